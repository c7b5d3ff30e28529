package img2geom

import (
	"fmt"
	"strings"
)

// ExportSVG renders an ordered sequence of committed shape results as an
// SVG document of the given dimensions, optionally over a background fill.
// Only the shapes' type tags and raw parameter dumps are consulted, so any
// recorded result sequence can be exported, including ones replayed from
// persisted raw data.
func ExportSVG(results []ShapeResult, width, height int, background RGBA) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
		width, height, svgColor(background))

	for _, result := range results {
		if element := svgElement(result); element != "" {
			sb.WriteString(element)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// svgElement formats one committed shape as an SVG element from its raw
// parameter dump.
func svgElement(result ShapeResult) string {
	data := result.Shape.RawData()
	fill := svgColor(result.Color)
	opacity := float64(result.Color.A) / 255

	switch result.Shape.Type() {
	case ShapeRectangle:
		return fmt.Sprintf(
			`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" fill-opacity="%.4f"/>`,
			data[0], data[1], data[2]-data[0]+1, data[3]-data[1]+1, fill, opacity)
	case ShapeEllipse:
		return fmt.Sprintf(
			`<ellipse cx="%d" cy="%d" rx="%d" ry="%d" fill="%s" fill-opacity="%.4f"/>`,
			data[0], data[1], data[2], data[3], fill, opacity)
	case ShapeCircle:
		return fmt.Sprintf(
			`<circle cx="%d" cy="%d" r="%d" fill="%s" fill-opacity="%.4f"/>`,
			data[0], data[1], data[2], fill, opacity)
	case ShapeTriangle:
		return fmt.Sprintf(
			`<polygon points="%d,%d %d,%d %d,%d" fill="%s" fill-opacity="%.4f"/>`,
			data[0], data[1], data[2], data[3], data[4], data[5], fill, opacity)
	case ShapeLine:
		return fmt.Sprintf(
			`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-opacity="%.4f" stroke-width="1"/>`,
			data[0], data[1], data[2], data[3], fill, opacity)
	case ShapeQuadraticBezier:
		var points []string
		for i := 0; i+1 < len(data); i += 2 {
			points = append(points, fmt.Sprintf("%d,%d", data[i], data[i+1]))
		}
		return fmt.Sprintf(
			`<polyline points="%s" fill="none" stroke="%s" stroke-opacity="%.4f" stroke-width="1"/>`,
			strings.Join(points, " "), fill, opacity)
	}
	return ""
}

func svgColor(c RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
