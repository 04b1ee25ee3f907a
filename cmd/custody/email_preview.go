package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/deppfellow/phonecustody/internal/lib/email"
)

// newEmailPreviewCommand renders every email template with sample data so
// they can be checked in a browser without sending anything.
func newEmailPreviewCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "email-preview",
		Short: "Render email templates with sample data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			names := make([]string, 0, len(email.PreviewData))
			for name := range email.PreviewData {
				names = append(names, string(name))
			}
			sort.Strings(names)

			for _, name := range names {
				html, err := email.Render(email.Template(name), email.PreviewData[email.Template(name)])
				if err != nil {
					return err
				}

				path := filepath.Join(outDir, name+".html")
				if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "email-preview", "directory to write rendered templates to")

	return cmd
}
