package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"img2geom"
	"img2geom/imageutil"
)

func main() {
	configFile := flag.String("config", "",
		"Path to a YAML config file (flags override file values)")
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Path to save the output PNG")
	svgFile := flag.String("svg", "",
		"Path to save the output SVG")
	targetWidth := flag.Int("width", 0,
		"Width to resize the target to before approximating")
	shapes := flag.Int("shapes", 0,
		"Number of shapes to add")
	shapeTypes := flag.String("types", "",
		"Comma-separated shape types (rectangle, ellipse, circle, "+
			"triangle, line, bezier, any)")
	alpha := flag.Int("alpha", 0,
		"Blend alpha for every shape (1-255)")
	candidates := flag.Int("candidates", 0,
		"Random candidate shapes per search pass")
	mutations := flag.Int("mutations", 0,
		"Hill climb mutation budget per search pass")
	passes := flag.Int("passes", 0,
		"Restart-and-climb passes per worker")
	workers := flag.Int("workers", 0,
		"Parallel search workers (0 = one per CPU)")
	seed := flag.Int64("seed", 0,
		"Random seed (fixed seed plus one worker is reproducible)")
	background := flag.String("background", "",
		"Starting background: hex RRGGBB or 'average'")
	frameEvery := flag.Int("frame-every", 0,
		"Save a PNG frame every N shapes (0 disables)")
	frameDir := flag.String("frame-dir", "",
		"Directory for intermediate frames")
	fontPath := flag.String("font", "",
		"TTF font used to annotate frames with step and score")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	config := DefaultConfig()
	if *configFile != "" {
		config, err = LoadConfig(*configFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
	}
	applyFlags(&config, *inputFile, *outputFile, *svgFile, *targetWidth,
		*shapes, *shapeTypes, *alpha, *candidates, *mutations, *passes,
		*workers, *seed, *background, *frameEvery, *frameDir, *fontPath)

	if err := config.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	if err := run(config, logger); err != nil {
		logger.Fatal("Run failed", zap.Error(err))
	}
}

// applyFlags overlays any flag that was explicitly set onto the config.
func applyFlags(config *Config, input, output, svg string, width,
	shapes int, types string, alpha, candidates, mutations, passes,
	workers int, seed int64, background string, frameEvery int,
	frameDir, fontPath string) {
	if input != "" {
		config.Input = input
	}
	if output != "" {
		config.Output = output
	}
	if svg != "" {
		config.SVGOutput = svg
	}
	if width > 0 {
		config.Width = width
	}
	if shapes > 0 {
		config.Shapes = shapes
	}
	if types != "" {
		config.ShapeTypes = strings.Split(types, ",")
	}
	if alpha > 0 {
		config.Alpha = alpha
	}
	if candidates > 0 {
		config.Candidates = candidates
	}
	if mutations > 0 {
		config.Mutations = mutations
	}
	if passes > 0 {
		config.Passes = passes
	}
	if workers > 0 {
		config.Workers = workers
	}
	if seed != 0 {
		config.Seed = seed
	}
	if background != "" {
		config.Background = background
	}
	if frameEvery > 0 {
		config.FrameEvery = frameEvery
	}
	if frameDir != "" {
		config.FrameDir = frameDir
	}
	if fontPath != "" {
		config.FontPath = fontPath
	}
}

func run(config Config, logger *zap.Logger) error {
	target, err := imageutil.LoadBitmap(config.Input)
	if err != nil {
		return err
	}
	if config.Width > 0 && target.Width() > config.Width {
		target = imageutil.ResizeToWidth(target, config.Width, imageutil.InterpolationArea)
	}

	var bg img2geom.RGBA
	if strings.EqualFold(config.Background, "average") {
		bg = imageutil.AverageColor(target)
	} else {
		bg, err = parseHexColor(config.Background)
		if err != nil {
			return err
		}
	}

	mask, err := config.shapeMask()
	if err != nil {
		return err
	}

	model := img2geom.NewModel(target, bg)
	model.SetSeed(config.Seed)
	if config.Workers > 0 {
		model.SetWorkers(config.Workers)
	}

	var annotate *annotator
	if config.FontPath != "" {
		annotate, err = newAnnotator(config.FontPath)
		if err != nil {
			return err
		}
	}

	logger.Info("Starting approximation",
		zap.String("input", config.Input),
		zap.Int("width", target.Width()),
		zap.Int("height", target.Height()),
		zap.Int("shapes", config.Shapes),
		zap.Float64("initial_score", model.Score()))

	progress := color.New(color.FgCyan)
	results := make([]img2geom.ShapeResult, 0, config.Shapes)
	improvements := make([]float64, 0, config.Shapes)
	start := time.Now()

	for i := 0; i < config.Shapes; i++ {
		before := model.Score()
		stepStart := time.Now()
		stepResults, err := model.Step(mask, uint8(config.Alpha),
			config.Candidates, config.Mutations, config.Passes)
		if err != nil {
			return fmt.Errorf("step %d failed: %w", i+1, err)
		}
		results = append(results, stepResults...)
		improvements = append(improvements, before-model.Score())

		last := stepResults[len(stepResults)-1]
		logger.Info("Committed shape",
			zap.Int("step", i+1),
			zap.String("shape", last.Shape.Type().String()),
			zap.Float64("score", last.Score),
			zap.Duration("duration", time.Since(stepStart)))
		progress.Printf("shape %4d/%d  %-16s  score %.5f\n",
			i+1, config.Shapes, last.Shape.Type(), last.Score)

		if config.FrameEvery > 0 && (i+1)%config.FrameEvery == 0 {
			if err := saveFrame(model, annotate, config.FrameDir, i+1); err != nil {
				return err
			}
		}
	}

	logger.Info("Finished approximation",
		zap.Float64("final_score", model.Score()),
		zap.Float64("mean_improvement", stat.Mean(improvements, nil)),
		zap.Duration("duration", time.Since(start)))

	if config.Output != "" {
		if err := imageutil.SaveBitmapPNG(model.Current(), config.Output); err != nil {
			return err
		}
	}
	if config.SVGOutput != "" {
		svg := img2geom.ExportSVG(results, model.Width(), model.Height(), bg)
		if err := os.WriteFile(config.SVGOutput, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}
	}
	return nil
}

// saveFrame writes the current canvas, annotated when a font is loaded.
func saveFrame(model *img2geom.Model, annotate *annotator, dir string, step int) error {
	path := filepath.Join(dir, fmt.Sprintf("frame_%06d.png", step))
	if annotate == nil {
		return imageutil.SaveBitmapPNG(model.Current(), path)
	}
	img, err := annotate.Annotate(model.Current(), step, model.Score())
	if err != nil {
		return err
	}
	return savePNGImage(img, path)
}

func savePNGImage(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	return png.Encode(f, img)
}
