package cli

import (
	"github.com/spf13/cobra"
)

func newFeedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Feedback commands",
	}

	cmd.AddCommand(newFeedbackSubmitCmd())
	cmd.AddCommand(newFeedbackListCmd())

	return cmd
}

func newFeedbackSubmitCmd() *cobra.Command {
	var name, email, message string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":    name,
				"email":   email,
				"message": message,
			}
			var result map[string]string

			if err := client.Post("/api/feedback", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(result["message"])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&email, "email", "", "Your email")
	cmd.Flags().StringVar(&message, "message", "", "Feedback message (required)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newFeedbackListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List feedback, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Feedback

			if err := client.Get("/api/feedback", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
