// Package main provides the cgminfo command, which decodes a binary CGM
// file and prints a summary or the decoded document as JSON.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/cgm"
	"github.com/tsawler/cgm/model"
)

var (
	outputPath string
	asJSON     bool
	pretty     bool
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cgminfo [input.cgm]",
		Short: "Describe a binary CGM file",
		Long: `cgminfo decodes a binary Computer Graphics Metafile and prints its
descriptor, pictures, polylines and text, or the whole document as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print the decoded document as JSON")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log decoder diagnostics to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	loader := cgm.Open(inputPath)
	if verbose {
		loader = loader.WithLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc, err := loader.Document()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if asJSON || pretty {
		err = writeJSON(&buf, doc, pretty)
	} else {
		err = writeSummary(&buf, doc)
	}
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}

func writeJSON(w io.Writer, doc *model.Document, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return nil
}

func writeSummary(w io.Writer, doc *model.Document) error {
	p := doc.Precision
	fmt.Fprintf(w, "Metafile:     %s\n", doc.FileName)
	if doc.Description != "" {
		fmt.Fprintf(w, "Description:  %s\n", doc.Description)
	}
	fmt.Fprintf(w, "Version:      %s\n", doc.Version)
	fmt.Fprintf(w, "Colour model: %s\n", doc.ColourModel)
	fmt.Fprintf(w, "VDC type:     %s\n", p.VDCType)
	fmt.Fprintf(w, "Precision:    integer %d, real %s, index %d, colour %d, colour index %d\n",
		p.Integer, p.Real, p.Index, p.Colour, p.ColourIndex)
	if doc.Font != "" {
		fmt.Fprintf(w, "Font:         %s\n", doc.Font)
	}
	for _, cs := range doc.CharacterSets {
		fmt.Fprintf(w, "Charset:      %s %q\n", cs.Type, cs.Designation)
	}
	fmt.Fprintf(w, "Pictures:     %d\n", doc.PictureCount())

	for i, pic := range doc.Pictures {
		ext := pic.VDCExtent
		fmt.Fprintf(w, "\n[%d] %s\n", i+1, pic.Name)
		fmt.Fprintf(w, "  VDC extent: (%d,%d)-(%d,%d) %dx%d\n",
			ext.BottomLeft.X, ext.BottomLeft.Y, ext.TopRight.X, ext.TopRight.Y,
			pic.VDCWidth(), pic.VDCHeight())
		fmt.Fprintf(w, "  Scaling:    %s\n", pic.ScalingMode)
		fmt.Fprintf(w, "  Polylines:  %d\n", len(pic.Polylines))
		for _, s := range pic.Strings() {
			fmt.Fprintf(w, "  Text:       %q\n", s)
		}
	}
	return nil
}
