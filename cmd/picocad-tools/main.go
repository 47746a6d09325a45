package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"picocad-tools/internal/config"
	"picocad-tools/internal/logger"
	"picocad-tools/pkg/export"
	"picocad-tools/pkg/picocad"
	"picocad-tools/pkg/projects"
)

func main() {
	output := pflag.StringP("output", "o", "", "Output file path")
	format := pflag.StringP("format", "f", "svg", "Output format (svg, obj, pdf, png, txt)")
	axisName := pflag.String("axis", "", "Projection axis for svg/pdf (x, y, z)")
	scale := pflag.Float64("scale", 0, "Projection scale for svg/pdf")
	textureScale := pflag.Int("texture-scale", 0, "Upscale factor for png texture export")
	setTexture := pflag.String("set-texture", "", "Replace the project texture with a PNG before exporting")
	info := pflag.Bool("info", false, "Print model information instead of exporting")
	list := pflag.Bool("list", false, "List projects in the picoCAD save directory")
	configPath := pflag.String("config", "", "Config file path")
	verbose := pflag.BoolP("verbose", "v", false, "Enable debug logging")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *list {
		var names []string
		if cfg.ProjectsDir != "" {
			names, err = projects.ListDir(cfg.ProjectsDir)
		} else {
			names, err = projects.List()
		}
		if err != nil {
			logger.Log.Fatal("failed to list projects", zap.Error(err))
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: picocad-tools [options] <file.txt | project name>")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	input := args[0]
	model, err := loadModel(input, cfg.ProjectsDir)
	if err != nil {
		logger.Log.Fatal("failed to load model", zap.String("input", input), zap.Error(err))
	}
	logger.Log.Debug("model loaded",
		zap.String("name", model.Header.Name),
		zap.Int("meshes", len(model.Meshes)))

	if *setTexture != "" {
		f, err := os.Open(*setTexture)
		if err != nil {
			logger.Log.Fatal("failed to open texture", zap.Error(err))
		}
		footer, err := export.ImportTexturePNG(f)
		f.Close()
		if err != nil {
			logger.Log.Fatal("failed to import texture", zap.Error(err))
		}
		model.Footer = footer
	}

	if *info {
		printInfo(model)
		return
	}

	if *axisName == "" {
		*axisName = cfg.Export.Axis
	}
	axis, err := parseAxis(*axisName)
	if err != nil {
		logger.Log.Fatal("invalid axis", zap.Error(err))
	}
	if *scale == 0 {
		*scale = cfg.Export.Scale
	}
	if *textureScale == 0 {
		*textureScale = cfg.Export.TextureScale
	}

	if *output == "" {
		base := strings.TrimSuffix(input, projects.Extension)
		*output = base + "." + *format
	}

	out, err := os.Create(*output)
	if err != nil {
		logger.Log.Fatal("failed to create output file", zap.Error(err))
	}
	defer out.Close()

	switch *format {
	case "svg":
		err = export.ExportSVG(model, out, axis, *scale)
	case "obj":
		err = export.ExportOBJ(model, out, *output)
	case "pdf":
		err = export.ExportPDF(model, out, axis, *scale)
	case "png":
		err = export.ExportTexturePNG(model.Footer, out, *textureScale)
	case "txt":
		_, err = out.WriteString(model.Serialize())
	default:
		logger.Log.Fatal("unknown format", zap.String("format", *format))
	}
	if err != nil {
		logger.Log.Fatal("export failed", zap.String("format", *format), zap.Error(err))
	}

	fmt.Printf("Exported to %s\n", *output)
}

// loadModel treats any input with a path separator or the save extension as
// a file path, everything else as a project name in the save directory/the
// configured projects directory.
func loadModel(input, projectsDir string) (picocad.Model, error) {
	if strings.ContainsAny(input, `/\`) || strings.HasSuffix(input, projects.Extension) {
		return projects.LoadModelPath(input)
	}
	if projectsDir != "" {
		return projects.LoadModelPath(filepath.Join(projectsDir, input+projects.Extension))
	}
	return projects.LoadModel(input)
}

func parseAxis(s string) (picocad.Axis, error) {
	switch s {
	case "x":
		return picocad.AxisX, nil
	case "y":
		return picocad.AxisY, nil
	case "z":
		return picocad.AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

func printInfo(m picocad.Model) {
	fmt.Printf("name:       %s\n", m.Header.Name)
	fmt.Printf("zoom:       %d\n", m.Header.Zoom)
	fmt.Printf("background: %s\n", m.Header.Background)
	fmt.Printf("alpha:      %s\n", m.Header.Alpha)
	fmt.Printf("meshes:     %d\n", len(m.Meshes))

	for i, mesh := range m.Meshes {
		fmt.Printf("  [%d] %s: %d vertices, %d faces, %d edges\n",
			i, mesh.Name, len(mesh.Vertices), len(mesh.Faces), len(mesh.Edges()))
	}
}
