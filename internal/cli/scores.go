package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Score submission and query commands",
	}

	cmd.AddCommand(newScoresSubmitCmd())
	cmd.AddCommand(newScoresGetCmd())

	return cmd
}

func newScoresSubmitCmd() *cobra.Command {
	var game, name, email string
	var scoreValue, responseTime float64
	var correct bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a game score",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"gameName":           game,
				"name":               name,
				"email":              email,
				"score":              scoreValue,
				"responseSymbolTime": responseTime,
				"correctSymbolCount": correct,
			}
			var result Score

			if err := client.Post("/api/scores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Game name (required)")
	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().Float64Var(&scoreValue, "score", 0, "Score value (required)")
	cmd.Flags().Float64Var(&responseTime, "response-time", 0, "Response symbol time")
	cmd.Flags().BoolVar(&correct, "correct", false, "Correct symbol count flag")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newScoresGetCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get scores for an account, highest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Score

			path := "/api/getscores?email=" + url.QueryEscape(email)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
