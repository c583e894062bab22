package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alonilk2/accounting-sub001/internal/application/documents"
)

var (
	cancelYes bool
	deleteYes bool
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <document-id>",
	Short: "Cancel a PAID document (releases its stock reservations)",
	Long: `Cancel transitions a document from PAID to CANCELLED. The backend is the
authority on the precondition: cancelling an already-cancelled document is
rejected there and the error is surfaced here.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle(cmd.Context(), documents.ActionCancel, args[0], cancelYes)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <document-id>",
	Short: "Delete a document regardless of status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle(cmd.Context(), documents.ActionDelete, args[0], deleteYes)
	},
}

func init() {
	cancelCmd.Flags().BoolVarP(&cancelYes, "yes", "y", false, "skip the confirmation prompt")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(deleteCmd)
}

// runLifecycle drives the controller's pending-confirmation flow: request
// the action, confirm or abort, and show the refreshed state.
func runLifecycle(ctx context.Context, kind, documentID string, skipPrompt bool) error {
	ctrl := documents.NewListController(client, log)
	switch kind {
	case documents.ActionCancel:
		ctrl.RequestCancel(documentID)
	case documents.ActionDelete:
		ctrl.RequestDelete(documentID)
	}

	if !skipPrompt && !confirm(fmt.Sprintf("%s document %s?", kind, documentID)) {
		ctrl.AbortPending()
		fmt.Println("Aborted.")
		return nil
	}

	if err := ctrl.ConfirmPending(ctx); err != nil {
		return err
	}
	fmt.Printf("Applied %s to document %s. %d documents on the refreshed page.\n",
		kind, documentID, len(ctrl.Page().Items))
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
