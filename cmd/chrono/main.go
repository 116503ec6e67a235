// Command chrono inspects time zones and converts instants between UTC
// and local wall-clock time. Zone rules come from the built-in provider
// or from a YAML rule document passed with --rules.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aparo/temporal/temporal"
	"github.com/aparo/temporal/temporal/chrono"
	"github.com/aparo/temporal/temporal/types"
	"github.com/aparo/temporal/temporal/zone"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "chrono",
		Short:   "Time zone and instant toolbox",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			rules, _ := cmd.Flags().GetString("rules")
			if rules == "" {
				return nil
			}
			f, err := os.Open(rules)
			if err != nil {
				return fmt.Errorf("failed to open rules: %w", err)
			}
			defer f.Close()
			p, err := zone.LoadRules(f)
			if err != nil {
				return err
			}
			return zone.SetProvider(p)
		},
	}
	rootCmd.PersistentFlags().String("rules", "", "YAML zone rule document to serve zones from")

	rootCmd.AddCommand(zonesCmd())
	rootCmd.AddCommand(offsetCmd())
	rootCmd.AddCommand(transitionsCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(keepLocalCmd())
	return rootCmd
}

func zonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List the zone ids the active provider serves",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, id := range zone.ActiveProvider().AvailableIDs() {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func offsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offset <zone-id>",
		Short: "Show the offset a zone applies at an instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := lookupZone(args[0])
			if err != nil {
				return err
			}
			instant, err := instantFlag(cmd)
			if err != nil {
				return err
			}
			offset := z.OffsetAt(instant)
			fmt.Printf("%s at %d:\n", z.ID(), instant)
			fmt.Printf("  offset    %s (%s)\n", types.FormatOffset(offset), z.NameKeyAt(instant))
			fmt.Printf("  standard  %s\n", types.FormatOffset(z.StandardOffsetAt(instant)))
			fmt.Printf("  fixed     %t\n", z.IsFixed())
			return nil
		},
	}
	cmd.Flags().Int64("at", time.Now().UnixMilli(), "UTC instant in milliseconds")
	return cmd
}

func transitionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transitions <zone-id>",
		Short: "Walk a zone's offset transitions forward from an instant",
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := lookupZone(args[0])
			if err != nil {
				return err
			}
			instant, err := instantFlag(cmd)
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt("count")

			if z.IsFixed() {
				fmt.Printf("%s is fixed at %s\n", z.ID(), types.FormatOffset(z.OffsetAt(instant)))
				return nil
			}
			for i := 0; i < count; i++ {
				next := z.NextTransition(instant)
				if next == instant {
					fmt.Println("no further transitions")
					return nil
				}
				fmt.Printf("%d  %s -> %s (%s)\n", next,
					types.FormatOffset(z.OffsetAt(next-1)),
					types.FormatOffset(z.OffsetAt(next)),
					z.NameKeyAt(next))
				instant = next
			}
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().Int64("at", time.Now().UnixMilli(), "UTC instant in milliseconds to start from")
	cmd.Flags().Int("count", 4, "number of transitions to print")
	return cmd
}

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <zone-id> <millis>",
		Short: "Convert an instant between UTC and a zone's local time line",
		Long: `Convert an instant between UTC and local wall-clock millis.

By default the argument is a UTC instant and the local reading is printed.
With --from-local the argument is a local reading; a reading inside a
spring-forward gap fails unless --lenient resolves it through the gap.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := lookupZone(args[0])
			if err != nil {
				return err
			}
			millis, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("bad instant %q: %w", args[1], err)
			}
			fromLocal, _ := cmd.Flags().GetBool("from-local")
			lenient, _ := cmd.Flags().GetBool("lenient")

			if fromLocal {
				utc, err := zone.LocalToUTC(z, millis, !lenient)
				if err != nil {
					return err
				}
				fmt.Printf("local %d in %s = UTC %d (%s)\n",
					millis, z.ID(), utc, temporal.NewDateTime(utc, chrono.ISOUTC()))
				return nil
			}
			local, err := zone.UTCToLocal(z, millis)
			if err != nil {
				return err
			}
			fmt.Printf("UTC %d = local %d in %s (%s)\n",
				millis, local, z.ID(), temporal.NewDateTime(millis, chrono.ISO(z)))
			return nil
		},
	}
	cmd.Flags().Bool("from-local", false, "treat the argument as a local reading")
	cmd.Flags().Bool("lenient", false, "resolve gap readings instead of failing")
	return cmd
}

func keepLocalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keep-local <from-zone> <to-zone> <millis>",
		Short: "Move an instant between zones preserving its wall-clock fields",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			from, err := lookupZone(args[0])
			if err != nil {
				return err
			}
			to, err := lookupZone(args[1])
			if err != nil {
				return err
			}
			millis, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("bad instant %q: %w", args[2], err)
			}
			moved, err := zone.MillisKeepLocal(from, to, millis)
			if err != nil {
				return err
			}
			fmt.Printf("%d in %s keeps its wall clock at %d in %s\n", millis, from.ID(), moved, to.ID())
			fmt.Printf("  was  %s\n", temporal.NewDateTime(millis, chrono.ISO(from)))
			fmt.Printf("  now  %s\n", temporal.NewDateTime(moved, chrono.ISO(to)))
			return nil
		},
	}
}

func lookupZone(id string) (zone.Zone, error) {
	z, err := zone.ActiveProvider().GetZone(id)
	if err != nil {
		return nil, fmt.Errorf("unknown zone %q: %w", id, err)
	}
	return z, nil
}

func instantFlag(cmd *cobra.Command) (int64, error) {
	at, err := cmd.Flags().GetInt64("at")
	if err != nil {
		return 0, err
	}
	return at, nil
}
