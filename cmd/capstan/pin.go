package capstan

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/songstitch/capstan/pkg/dockerfile"
	"github.com/songstitch/capstan/pkg/pin"
)

func init() {
	pinCmd.Flags().
		StringP("output", "o", "Dockerfile.pinned", "Name of the output Dockerfile")
	pinCmd.Flags().
		BoolP("dry-run", "", false, "Write the output to stdout instead of a file")
	pinCmd.Flags().
		BoolP("yes", "y", false, "Write the output to the file without confirmation when the file exists. This will overwrite the file")
	rootCmd.AddCommand(pinCmd)
}

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Anchor a Dockerfile's base images to registry digests",
	Long:  "pin parses a Dockerfile, resolves every FROM image to its digest and writes the Dockerfile back with the images anchored to those digests.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-c
			cancel()
			os.Exit(1)
		}()

		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}

		doc, err := parseFile(input)
		if err != nil {
			return err
		}

		color.Cyan("Anchoring base images in %s\n", input)
		pinned, err := pin.Images(ctx, doc, pin.Options{})
		if err != nil {
			return err
		}

		for _, instruction := range pinned.Instructions {
			run, ok := instruction.(dockerfile.Run)
			if !ok {
				continue
			}
			if packages := pin.AptPackages(run.Command); len(packages) > 0 {
				color.Yellow("RUN installs unpinned packages: %s", strings.Join(packages, ", "))
			}
		}

		if dryRun {
			color.Green("Generated pinned Dockerfile\n")
			fmt.Println(pinned.String())
			return nil
		}
		return writeFile(pinned.String(), output, yes)
	},
}
