// Command cnpj validates CNPJs and generates their check digits.
//
//	cnpj validate 11.222.333/0001-81    prints true or false
//	cnpj generate 11.222.333/0001       prints the two check digits
//	cnpj digit 112223330001             prints one modulo 11 check digit
//	cnpj random --letters               prints a random valid CNPJ
//	cnpj extract < notes.txt            prints the valid CNPJs found in text
//
// The short forms "cnpj -v <cnpj>" and "cnpj -dv <cnpj>" are accepted as
// aliases of validate and generate.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nexconsult/cnpj-dv/internal/cnpj"
	"github.com/nexconsult/cnpj-dv/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev" // set by the linker

func main() {
	cmd := NewRootCmd()
	cmd.SetArgs(legacyArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}

// legacyArgs rewrites the first "-v" or "-dv" mode, in any case, to the
// validate or generate subcommand. Only tokens before the first positional
// argument are considered, so persistent flags may precede the mode.
func legacyArgs(args []string) []string {
	rewritten := append([]string(nil), args...)

	for i := 0; i < len(rewritten); i++ {
		arg := rewritten[i]
		switch strings.ToUpper(arg) {
		case "-V":
			rewritten[i] = "validate"
			return rewritten
		case "-DV":
			rewritten[i] = "generate"
			return rewritten
		}

		switch {
		case arg == "--log-level":
			i++ // skip the value
		case strings.HasPrefix(arg, "-"):
		default:
			return rewritten
		}
	}

	return rewritten
}

// NewRootCmd creates the root command with its subcommands. Each call
// returns an independent command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string
	a := &app{log: logrus.New()}
	a.log.SetOutput(io.Discard)

	cmd := &cobra.Command{
		Use:   "cnpj",
		Short: "Validate CNPJs and generate their check digits",
		Long: `cnpj validates Brazilian CNPJs, numeric or alphanumeric, against their
two modulo 11 check digits, and generates the check digits of a CNPJ root.

Inputs must be masked: AA.AAA.AAA/AAAA-DD for validation and AA.AAA.AAA/AAAA
for generation. Letters are accepted in the first twelve positions.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logger.NewWithOutput(logLevel, "text", cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", `log level written to stderr ("debug", "info", "warn")`)
	// no shorthand, "-v" is the validate mode
	cmd.Flags().Bool("version", false, "version for cnpj")

	cmd.AddCommand(a.newValidateCmd())
	cmd.AddCommand(a.newGenerateCmd())
	cmd.AddCommand(a.newDigitCmd())
	cmd.AddCommand(a.newRandomCmd())
	cmd.AddCommand(a.newExtractCmd())

	return cmd
}

// app carries the state shared by the subcommands of one command tree
type app struct {
	log *logrus.Logger
}

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate <cnpj>",
		Aliases: []string{"v"},
		Short:   "Check a CNPJ against its own check digits",
		Example: "  cnpj validate 11.222.333/0001-81\n  cnpj validate 12.ABC.345/01DE-35",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := cnpj.Parse(args[0])
			if err != nil {
				return err
			}

			valid, err := parsed.Validate()
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"cnpj":  parsed.String(),
				"valid": valid,
			}).Debug("CNPJ validated")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), valid)
			return err
		},
	}
}

func (a *app) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate <cnpj>",
		Aliases: []string{"dv"},
		Short:   "Print the two check digits of a CNPJ root",
		Example: "  cnpj generate 11.222.333/0001\n  cnpj generate AB.CDE.FGH/IJKL",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := cnpj.Parse(args[0])
			if err != nil {
				return err
			}

			digits, err := parsed.CheckDigits()
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"cnpj":         parsed.String(),
				"check_digits": digits,
			}).Debug("Check digits generated")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), digits)
			return err
		},
	}
}

func (a *app) newDigitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digit <value>",
		Short: "Print the modulo 11 check digit of an arbitrary alphanumeric value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := cnpj.NewCalculator(args[0])

			a.log.WithFields(logrus.Fields{
				"value": calc.Value(),
				"sum":   calc.Sum(),
			}).Debug("Check digit computed")

			_, err := fmt.Fprintln(cmd.OutOrStdout(), calc.Digit())
			return err
		},
	}
}

func (a *app) newRandomCmd() *cobra.Command {
	var letters bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random valid head office CNPJ, for test data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cnpj.Random(nil, letters)
			a.log.WithField("cnpj", c.String()).Debug("Random CNPJ generated")

			_, err := fmt.Fprintln(cmd.OutOrStdout(), c.Formatted())
			return err
		},
	}

	cmd.Flags().BoolVar(&letters, "letters", false, "allow letters in the company root")

	return cmd
}

func (a *app) newExtractCmd() *cobra.Command {
	var sameRoot string

	cmd := &cobra.Command{
		Use:   "extract [file...]",
		Short: "Print the valid masked CNPJs found in files or stdin, one per line",
		Example: "  cnpj extract contract.txt\n" +
			"  cat notes.txt | cnpj extract --same-root 11.222.333/0001-81",
		RunE: func(cmd *cobra.Command, args []string) error {
			var company cnpj.CNPJ
			if sameRoot != "" {
				parsed, err := cnpj.Parse(sameRoot)
				if err != nil {
					return fmt.Errorf("--same-root: %w", err)
				}
				company = parsed
			}

			text, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			found := cnpj.ExtractFromText(text)
			printed := 0
			for _, c := range found {
				if sameRoot != "" && !c.SameRoot(company) {
					continue
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), c.Formatted()); err != nil {
					return err
				}
				printed++
			}

			a.log.WithFields(logrus.Fields{
				"found":   len(found),
				"printed": printed,
			}).Debug("CNPJs extracted")
			return nil
		},
	}

	cmd.Flags().StringVar(&sameRoot, "same-root", "", "only print CNPJs of the same company as this one")
	return cmd
}

// readInputs concatenates the named files, or reads stdin when none is given
func readInputs(stdin io.Reader, paths []string) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	var text strings.Builder
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		text.Write(data)
		text.WriteByte('\n')
	}
	return text.String(), nil
}
