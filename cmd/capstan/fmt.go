package capstan

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	fmtCmd.Flags().
		StringP("output", "o", "", "Name of the output Dockerfile. Defaults to stdout")
	fmtCmd.Flags().
		BoolP("yes", "y", false, "Write the output to the file without confirmation when the file exists. This will overwrite the file")
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite a Dockerfile in canonical form",
	Long:  "fmt parses a Dockerfile and rewrites it with one instruction per line, uppercase keywords and normalized spacing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		output, err := cmd.Flags().GetString("output")
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

		if output == "" {
			return doc.Write(os.Stdout)
		}
		return writeFile(doc.String(), output, yes)
	},
}

// writeFile writes content to path, asking before overwriting an existing
// file unless yes is set. On a declined overwrite the content still goes to
// stdout so the work is not lost.
func writeFile(content, path string, yes bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err == nil && !yes {
		color.Yellow("File %s already exists. Overwrite? (y/n)", absPath)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		if strings.ToLower(response) != "y\n" {
			fmt.Print(content)
			return fmt.Errorf("exiting without writing file")
		}
	}
	err = os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		return err
	}
	color.Green("Generated Dockerfile: %s", absPath)
	return nil
}
