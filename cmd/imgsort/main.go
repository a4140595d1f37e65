// Package main provides the CLI entry point for imgsort.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/imgsort-go/pkg/imgsort"
	"github.com/ukaji3/imgsort-go/pkg/imgsort/models"
	"github.com/ukaji3/imgsort-go/pkg/imgsort/output"
)

// defaultConfigFile is read from the working directory when --config is not given.
const defaultConfigFile = "imgsort.toml"

var (
	configPath    string
	inputFolder   string
	outputFolder  string
	barcodeColumn string
	workDir       string
	policy        string
	verbose       bool
	jsonOut       bool
	pretty        bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := imgsort.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "imgsort",
		Short: "Resize product images and rename them by barcode",
		Long: `imgsort resizes every image in an input folder and its immediate subfolders
to 270x300 JPEG thumbnails. Images found in the lookup spreadsheet are renamed
to their barcode; the rest are collected in not_found folders with a report.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file (default: ./"+defaultConfigFile+" if present)")
	rootCmd.Flags().StringVarP(&inputFolder, "input", "i", defaults.InputFolder, "Root image folder")
	rootCmd.Flags().StringVarP(&outputFolder, "output", "o", defaults.OutputFolder, "Output folder")
	rootCmd.Flags().StringVarP(&barcodeColumn, "barcode-column", "b", defaults.BarcodeColumn, "Header name of the barcode column")
	rootCmd.Flags().StringVarP(&workDir, "workdir", "w", defaults.WorkDir, "Directory searched for the lookup spreadsheet")
	rootCmd.Flags().StringVar(&policy, "policy", string(defaults.Policy), "Not-found routing: always, lookup")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the run summary as JSON (logs go to stderr)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	logOut := cmd.OutOrStdout()
	if jsonOut {
		logOut = cmd.ErrOrStderr()
	}
	log := newLogger(logOut, verbose)
	entry := log.WithField("run", uuid.NewString())
	entry.WithFields(logrus.Fields{
		"input":  opts.InputFolder,
		"output": opts.OutputFolder,
		"column": opts.BarcodeColumn,
		"policy": opts.Policy,
	}).Info("Starting run")

	summary, err := imgsort.Organize(opts, entry)
	if summary != nil {
		if perr := printSummary(cmd.OutOrStdout(), summary); perr != nil && err == nil {
			err = perr
		}
	}
	if err != nil {
		return fmt.Errorf("organize failed: %w", err)
	}

	return nil
}

func printSummary(w io.Writer, summary *models.RunSummary) error {
	if jsonOut {
		jsonData, err := output.ToJSON(summary, pretty)
		if err != nil {
			return fmt.Errorf("failed to serialize summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonData))
		return err
	}
	if len(summary.Folders) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, renderSummary(summary, isTerminal(w)))
	return err
}

// resolveOptions layers defaults, the config file and explicitly set flags.
func resolveOptions(cmd *cobra.Command) (imgsort.Options, error) {
	opts := imgsort.DefaultOptions()

	path := configPath
	if path == "" {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if opts, err = imgsort.LoadOptionsFile(path, opts); err != nil {
			return opts, err
		}
	} else if configPath != "" || !errors.Is(err, fs.ErrNotExist) {
		return opts, fmt.Errorf("config file: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		opts.InputFolder = inputFolder
	}
	if flags.Changed("output") {
		opts.OutputFolder = outputFolder
	}
	if flags.Changed("barcode-column") {
		opts.BarcodeColumn = barcodeColumn
	}
	if flags.Changed("workdir") {
		opts.WorkDir = workDir
	}
	if flags.Changed("policy") {
		p, err := imgsort.ParsePolicy(policy)
		if err != nil {
			return opts, err
		}
		opts.Policy = p
	}

	return opts, nil
}
