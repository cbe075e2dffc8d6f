package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	figmahtmlgen "github.com/hellenic-development/figma-htmlgen"
	"github.com/hellenic-development/figma-htmlgen/pkg/ir"
	"github.com/hellenic-development/figma-htmlgen/pkg/renderer"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	figmaURL    string
	accessToken string
	outputDir   string
	cacheFile   string
	cacheMaxAge time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-htmlgen",
		Short: "Generate a static HTML/CSS document from a Figma file",
		Long:  "A tool that converts a Figma design frame into a pixel-faithful static page: an absolutely positioned HTML document plus a deduplicated stylesheet",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL (required)")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (defaults to FIGMA_TOKEN env)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "figma-site", "Output directory for index.html and style.css")
	rootCmd.Flags().StringVar(&cacheFile, "cache", "", "Path to a raw-document cache file (optional)")
	rootCmd.Flags().DurationVar(&cacheMaxAge, "cache-max-age", 0, "Maximum cache age before refetching (0 = never expires)")

	rootCmd.MarkFlagRequired("url")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-htmlgen version %s\n", figmahtmlgen.Version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Figma HTML Generator")
	cyan.Println("=======================")
	cyan.Println()

	// Token can come from the flag, a .env file, or the environment.
	if accessToken == "" {
		godotenv.Load()
		accessToken = os.Getenv("FIGMA_TOKEN")
	}
	if accessToken == "" {
		red.Println("Error: no access token (use --token, FIGMA_TOKEN, or a .env file)")
		os.Exit(1)
	}

	result, err := figmahtmlgen.Run(figmahtmlgen.Options{
		AccessToken: accessToken,
		FileURL:     figmaURL,
		OutputDir:   outputDir,
		CacheFile:   cacheFile,
		CacheMaxAge: cacheMaxAge,
		Logger:      &cliLogger{},
	})
	if err != nil {
		var structErr *ir.StructuralError
		if errors.As(err, &structErr) {
			red.Printf("Error: %v\n", err)
			red.Println("The file has no frame to render; name a top-level FRAME so it contains \"frame\".")
		} else {
			red.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}

	reg := result.Registry
	cyan.Println("\n📊 Generation Summary:")
	fmt.Printf("  • File: %s\n", result.FileName)
	fmt.Printf("  • Text styles: %d\n", len(reg.TextStyles()))
	fmt.Printf("  • Fill classes: %d\n", len(reg.Fills()))
	fmt.Printf("  • Stroke classes: %d\n", len(reg.Strokes()))

	green.Printf("\n✨ Wrote %s and %s\n\n",
		filepath.Join(outputDir, figmahtmlgen.MarkupName),
		filepath.Join(outputDir, renderer.StylesheetName))
}

// cliLogger implements figmahtmlgen.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
