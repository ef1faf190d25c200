package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ebfe/scard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gregLibert/sim-reader/pkg/iso7816"
	"github.com/gregLibert/sim-reader/pkg/sim"
)

var version = "1.0.0"

var (
	flagReader  string
	flagVerbose bool
	flagJSON    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "simreader",
		Short:   "Read identity data from SIM/USIM cards",
		Long:    "simreader extracts ICCID, IMSI, MSISDN and the service provider name\nfrom a SIM/USIM card in a PC/SC reader.",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCard(func(card *sim.Card) error {
				data := card.Identity()
				if flagJSON {
					return printJSON(data)
				}
				printHuman(data)
				return nil
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flagReader, "reader", "r", "", "use the first reader whose name contains this string")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable protocol-level debug output")
	rootCmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "print the result as JSON")

	rootCmd.AddCommand(newExploreCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("simreader " + version)
		},
	})

	return rootCmd
}

func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Probe the card for well-known files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCard(func(card *sim.Card) error {
				fmt.Println("\n=== Exploring SIM/USIM File Structure ===")

				found, checked := 0, 0
				for entry, ok := range card.Explore() {
					checked++
					if !ok {
						continue
					}
					found++
					class := "Dedicated File"
					if entry.Transparent() {
						class = "Transparent File"
					}
					fmt.Printf("✓ %s (%s) - %s\n\n", entry.Name, entry.Description, class)
				}

				fmt.Printf("Found %d accessible files out of %d checked\n", found, checked)
				return nil
			})
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file-id>",
		Short: "Show the file control parameters of a file",
		Long:  "inspect selects a file by its hexadecimal identifier (e.g. 6F07) and\ndecodes the FCP template the card returns.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := strconv.ParseUint(args[0], 16, 16)
			if err != nil {
				return fmt.Errorf("invalid file identifier %q: expected 4 hex digits", args[0])
			}

			return withCard(func(card *sim.Card) error {
				info, err := card.Inspect(iso7816.FileID(raw))
				if err != nil {
					return err
				}
				fmt.Println(info)
				return nil
			})
		},
	}
}

func printJSON(data sim.SimData) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func printHuman(data sim.SimData) {
	display := func(v *string) string {
		if v == nil {
			return "Not available"
		}
		return *v
	}

	fmt.Println("=== SIM Card Information ===")
	fmt.Printf("IMSI:    %s\n", display(data.IMSI))
	fmt.Printf("ICCID:   %s\n", display(data.ICCID))
	fmt.Printf("MSISDN:  %s\n", display(data.MSISDN))
	fmt.Printf("SPN:     %s\n", display(data.SPN))
}

// withCard connects to a reader, runs fn over the card, and tears the
// connection down afterwards.
func withCard(fn func(card *sim.Card) error) error {
	ctx, card, err := connectToCard()
	if err != nil {
		return err
	}

	defer func() {
		if err := ctx.Release(); err != nil {
			logrus.Warnf("failed to release context: %v", err)
		}
	}()

	defer func() {
		if err := card.Disconnect(scard.LeaveCard); err != nil {
			logrus.Warnf("failed to disconnect card: %v", err)
		}
	}()

	return fn(sim.NewCard(card))
}

// connectToCard handles the PC/SC context establishment and reader connection.
func connectToCard() (*scard.Context, *scard.Card, error) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, nil, fmt.Errorf("establishing PC/SC context: %w", err)
	}

	readers, err := ctx.ListReaders()
	if err != nil || len(readers) == 0 {
		releaseOnError(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("listing readers: %w", err)
		}
		return nil, nil, fmt.Errorf("no smart card reader found")
	}

	reader, err := pickReader(readers, flagReader)
	if err != nil {
		releaseOnError(ctx)
		return nil, nil, err
	}

	logrus.Debugf("using reader: %s", reader)

	// Force T=0 or T=1 to avoid "Parameter Incorrect" errors on some stacks.
	card, err := ctx.Connect(reader, scard.ShareShared, scard.ProtocolT0|scard.ProtocolT1)
	if err != nil {
		releaseOnError(ctx)
		return nil, nil, fmt.Errorf("connecting to card in %q: %w", reader, err)
	}

	return ctx, card, nil
}

// pickReader chooses among the attached readers: an explicit --reader
// substring wins, then known SIM reader brands (ACR/ACS), then the first
// reader listed.
func pickReader(readers []string, preferred string) (string, error) {
	if preferred != "" {
		for _, r := range readers {
			if strings.Contains(r, preferred) {
				return r, nil
			}
		}
		return "", fmt.Errorf("no reader matching %q among %s", preferred, strings.Join(readers, ", "))
	}

	for _, r := range readers {
		if strings.Contains(r, "ACR") || strings.Contains(r, "ACS") {
			return r, nil
		}
	}
	return readers[0], nil
}

func releaseOnError(ctx *scard.Context) {
	if err := ctx.Release(); err != nil {
		logrus.Warnf("failed to release context during error handling: %v", err)
	}
}
