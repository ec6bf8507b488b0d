package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passguard/passguard-go/internal/crypto"
	"github.com/passguard/passguard-go/internal/model"
	"github.com/passguard/passguard-go/internal/service"
	"github.com/passguard/passguard-go/internal/strength"
)

var asJSON bool

func newService() *service.StrengthService {
	evaluator := strength.NewEvaluator(strength.DefaultCommonPasswords())
	return service.NewStrengthService(evaluator)
}

var rootCmd = &cobra.Command{
	Use:   "passguard",
	Short: "Assess password strength and generate strong passwords",
	Long: `passguard scores a password against length and character-class
criteria, estimates its entropy and crack time, checks it against a list of
common passwords, and can generate strong random passwords.`,
	SilenceUsage: true,
}

var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Assess the strength of a password",
	Long: `Assess the strength of a password given as an argument or entered
interactively. The password is never stored or logged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			fmt.Fprint(cmd.OutOrStdout(), "Enter password to check: ")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Scan()
			password = strings.TrimSpace(scanner.Text())
		}

		assessment := newService().Evaluate(model.EvaluateRequest{Password: password})
		if asJSON {
			return printJSON(cmd, assessment)
		}
		printAssessment(cmd, assessment)
		return nil
	},
}

var (
	genLength         int
	genExcludeSimilar bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a strong random password",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := newService().Generate(model.GenerateRequest{
			Length:         genLength,
			ExcludeSimilar: genExcludeSimilar,
		})
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(cmd, resp)
		}
		fmt.Fprintln(cmd.OutOrStdout(), resp.Password)
		return nil
	},
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAssessment(cmd *cobra.Command, a strength.Assessment) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Strength:  %s\n", a.Strength)
	fmt.Fprintf(out, "Score:     %d/%d\n", a.Score, strength.MaxScore)
	fmt.Fprintf(out, "Entropy:   %.2f bits\n", a.EntropyBits)
	fmt.Fprintf(out, "Crack time: %s\n", a.CrackTime)

	if len(a.Issues) > 0 {
		fmt.Fprintln(out, "\nIssues:")
		for _, issue := range a.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
	}
	if len(a.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations:")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(out, "  - %s\n", rec)
		}
	}
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print output as JSON")
	generateCmd.Flags().IntVarP(&genLength, "length", "l", crypto.DefaultPolicy().Length,
		fmt.Sprintf("password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	generateCmd.Flags().BoolVar(&genExcludeSimilar, "exclude-similar", false,
		"exclude visually similar characters (O, 0, I, 1, l, i)")

	rootCmd.AddCommand(checkCmd, generateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
