// Package main provides a debug command-line client for the loadout server
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/paddockgames/loadout-api/internal/client"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

var (
	serverAddr string
	playerID   int
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "loadout-client",
	Short: "Debug client for the loadout server",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:8090", "server address")
	rootCmd.PersistentFlags().IntVar(&playerID, "player", 1, "player identifier")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(adminCmd)

	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminSaveCmd)
	adminCmd.AddCommand(adminClearCmd)
	adminCmd.AddCommand(adminApplyCmd)
	adminCmd.AddCommand(adminSetAICmd)
}

// withConn dials, runs fn, and tears the connection down
func withConn(fn func(ctx context.Context, conn *client.Conn) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn, err := client.Dial(ctx, serverAddr, playerID)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	return fn(ctx, conn)
}

func doRequest(req *protocol.Request) error {
	return withConn(func(ctx context.Context, conn *client.Conn) error {
		resp, err := conn.Controller().Do(ctx, req)
		if err != nil {
			return err
		}
		printResponse(resp)
		return nil
	})
}

func printResponse(resp *protocol.Response) {
	status := "OK"
	if !resp.Success {
		status = "FAILED"
	}
	if resp.Request.ActionType.IsLoadout() {
		if summaries := protocol.UnmarshalSummaries(resp.Message); summaries != nil {
			fmt.Printf("%s %s\n", status, resp.Request.ActionType)
			printSummaries(summaries)
			return
		}
	}
	fmt.Printf("%s %s: %s\n", status, resp.Request.ActionType, resp.Message)
}

func printSummaries(summaries []protocol.LoadoutSummary) {
	for _, s := range summaries {
		marker := " "
		if s.HasData {
			marker = "*"
		}
		fmt.Printf("  %s [%d] %s", marker, s.SlotID, s.DisplayName)
		if s.HasData {
			fmt.Printf("  cost=%.1f rank=%s", s.SupplyCost, s.RequiredRank)
		}
		fmt.Println()
	}
}

func slotArg(args []string) (int, error) {
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("slot must be a number: %w", err)
	}
	return slot, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved loadouts",
	RunE: func(_ *cobra.Command, _ []string) error {
		return doRequest(protocol.NewLoadoutRequest(protocol.ActionGetLoadouts, 0, -1))
	},
}

var saveCmd = &cobra.Command{
	Use:   "save [slot]",
	Short: "Save the current character into a loadout slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := slotArg(args)
		if err != nil {
			return err
		}
		return doRequest(protocol.NewLoadoutRequest(protocol.ActionSaveLoadout, 0, slot))
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear [slot]",
	Short: "Clear a loadout slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := slotArg(args)
		if err != nil {
			return err
		}
		return doRequest(protocol.NewLoadoutRequest(protocol.ActionClearLoadout, 0, slot))
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply [slot]",
	Short: "Apply a saved loadout to the current character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := slotArg(args)
		if err != nil {
			return err
		}
		return doRequest(protocol.NewLoadoutRequest(protocol.ActionApplyLoadout, 0, slot))
	},
}

var cacheCmd = &cobra.Command{
	Use:   "cache [faction]",
	Short: "Show the prediction cache after the connect-time push",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withConn(func(ctx context.Context, conn *client.Conn) error {
			// the push races the connect; give it a moment to land
			deadline := time.Now().Add(2 * time.Second)
			for !conn.Controller().Cache().Initialized() && time.Now().Before(deadline) {
				time.Sleep(20 * time.Millisecond)
			}

			cache := conn.Controller().Cache()
			if !cache.Initialized() {
				fmt.Println("cache not initialized (no push received)")
				return nil
			}
			for slot := 0; slot < 5; slot++ {
				fmt.Printf("  [%d] valid=%v", slot, cache.IsValid(args[0], slot))
				if data, ok := cache.GetDenormalizedData(args[0], slot); ok {
					fmt.Printf(" cost=%.1f rank=%s", data.Cost, data.RequiredRank)
				}
				fmt.Println()
			}
			return nil
		})
	},
}

var (
	arsenalID uint64
	storageID uint64
)

var addCmd = &cobra.Command{
	Use:   "add [slot] [prefab]",
	Short: "Add an item into a storage slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := slotArg(args)
		if err != nil {
			return err
		}
		return doRequest(protocol.NewStorageRequest(protocol.ActionAddItem, arsenalID, storageID, slot, args[1]))
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [slot]",
	Short: "Remove the item in a storage slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := slotArg(args)
		if err != nil {
			return err
		}
		return doRequest(protocol.NewStorageRequest(protocol.ActionRemoveItem, arsenalID, storageID, slot, ""))
	},
}

func init() {
	for _, cmd := range []*cobra.Command{addCmd, removeCmd} {
		cmd.Flags().Uint64Var(&arsenalID, "arsenal", 1, "arsenal entity identifier")
		cmd.Flags().Uint64Var(&storageID, "storage", 0, "storage identifier")
	}
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Operate on the shared admin loadout pool",
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admin loadouts",
	RunE: func(_ *cobra.Command, _ []string) error {
		return doRequest(protocol.NewLoadoutRequest(protocol.ActionGetAdminLoadouts, 0, -1))
	},
}

var adminSaveCmd = &cobra.Command{
	Use:   "save [slot]",
	Short: "Save the current character into an admin slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := slotArg(args)
		if err != nil {
			return err
		}
		return doRequest(protocol.NewLoadoutRequest(protocol.ActionSaveLoadoutAdmin, 0, slot))
	},
}

var adminClearCmd = &cobra.Command{
	Use:   "clear [slot]",
	Short: "Clear an admin slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := slotArg(args)
		if err != nil {
			return err
		}
		return doRequest(protocol.NewLoadoutRequest(protocol.ActionClearLoadoutAdmin, 0, slot))
	},
}

var adminApplyCmd = &cobra.Command{
	Use:   "apply [slot]",
	Short: "Apply an admin loadout to the current character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := slotArg(args)
		if err != nil {
			return err
		}
		return doRequest(protocol.NewLoadoutRequest(protocol.ActionApplyLoadoutAdmin, 0, slot))
	},
}

var adminSetAICmd = &cobra.Command{
	Use:   "set-ai [slot]",
	Short: "Designate an admin slot as the AI loadout",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := slotArg(args)
		if err != nil {
			return err
		}
		return doRequest(protocol.NewLoadoutRequest(protocol.ActionSetAILoadoutAdmin, 0, slot))
	},
}
