package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axiom-labs-org/core/pkg/storage"
	"github.com/axiom-labs-org/core/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect archived blocks and receipts",
	Long: `Read archived block records from a data directory.

Examples:
  # Show the head block
  axiom inspect --data-dir ./data

  # Show a specific block with its receipts
  axiom inspect --data-dir ./data --block <hash>`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("data-dir", "", "Archive data directory (required)")
	inspectCmd.Flags().String("block", "", "Block hash to inspect (defaults to head)")
	_ = inspectCmd.MarkFlagRequired("data-dir")
}

func runInspect(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	blockArg, _ := cmd.Flags().GetString("block")

	archive, err := storage.NewBoltArchive(dataDir)
	if err != nil {
		return err
	}
	defer archive.Close()

	var hash types.Hash
	if blockArg != "" {
		hash, err = types.HashFromHex(blockArg)
		if err != nil {
			return err
		}
	} else {
		head, found, err := archive.Head()
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("archive is empty")
		}
		hash = head
	}

	record, err := archive.GetBlock(hash)
	if err != nil {
		return err
	}
	receipts, err := archive.GetReceipts(hash)
	if err != nil {
		return err
	}

	fmt.Printf("Block:         %s\n", record.Hash)
	if record.ParentHash != nil {
		fmt.Printf("Parent:        %s\n", record.ParentHash)
	} else {
		fmt.Printf("Parent:        (genesis)\n")
	}
	fmt.Printf("Slot:          %s\n", record.Slot)
	fmt.Printf("Epoch:         %s\n", record.Epoch)
	fmt.Printf("State root:    %s\n", record.StateRoot)
	fmt.Printf("Receipts root: %s\n", record.ReceiptsRoot)
	fmt.Printf("Transactions:  %d\n", len(record.TxHashes))

	for i, receipt := range receipts {
		status := "ok"
		if !receipt.Success {
			status = "failed: " + receipt.Error
		}
		fmt.Printf("  [%d] %s fee=%d %s\n", i, receipt.TxHash.Short(), receipt.Fee, status)
	}
	return nil
}
