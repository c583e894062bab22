package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	appprint "github.com/alonilk2/accounting-sub001/internal/application/print"
	"github.com/alonilk2/accounting-sub001/internal/infrastructure/pdf"
)

var printOutput string

var printCmd = &cobra.Command{
	Use:   "print <document-id>",
	Short: "Export the printable PDF of a document",
	Long: `Print assembles the full document record together with the issuer
profile (or its fallback identity when the issuer endpoint is unavailable)
and writes the fixed A4 PDF rendition.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assembler := appprint.NewAssembler(client, client, log)
		view, err := assembler.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		renderer := pdf.NewMarotoRenderer()
		out, err := renderer.Render(cmd.Context(), view)
		if err != nil {
			return err
		}

		path := printOutput
		if path == "" {
			path = filepath.Join(cfg.Print.OutputDir, fmt.Sprintf("document_%s.pdf", view.Document.Number))
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", path, len(out))
		return nil
	},
}

func init() {
	printCmd.Flags().StringVarP(&printOutput, "output", "o", "", "output file (default <print-dir>/document_<number>.pdf)")
	rootCmd.AddCommand(printCmd)
}
