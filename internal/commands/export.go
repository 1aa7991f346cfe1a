package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/deliverydesk/internal/database"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the project as a JSON snapshot",
	Long: `Export writes every record scoped to the project (sprints,
milestones, work items, change requests, comments) as one JSON document.
With --encrypt the payload is sealed with a passphrase read from the
terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		encrypt, _ := cmd.Flags().GetBool("encrypt")
		opts := database.ExportOptions{EncryptOutput: encrypt}
		if encrypt {
			pass, err := promptPassphrase("Export passphrase: ")
			if err != nil {
				return err
			}
			if pass == "" {
				return fmt.Errorf("empty passphrase")
			}
			confirm, err := promptPassphrase("Confirm passphrase: ")
			if err != nil {
				return err
			}
			if pass != confirm {
				return fmt.Errorf("passphrases do not match")
			}
			opts.Passphrase = pass
		}

		payload, err := p.db.ExportProjectData(ctx, p.project.ID, opts)
		if err != nil {
			return err
		}

		filename := fmt.Sprintf("%s_export.json", p.project.Slug)
		if len(args) == 1 {
			filename = args[0]
		}
		if err := os.WriteFile(filename, payload, 0o600); err != nil {
			return err
		}
		fmt.Printf("Exported %s to %s\n", p.project.Slug, filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolP("encrypt", "e", false, "Encrypt the export with a passphrase")
}

func promptPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
