package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axiom-labs-org/core/pkg/chain"
	"github.com/axiom-labs-org/core/pkg/engine"
	"github.com/axiom-labs-org/core/pkg/exttx"
	"github.com/axiom-labs-org/core/pkg/genesis"
	"github.com/axiom-labs-org/core/pkg/log"
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/storage"
	"github.com/axiom-labs-org/core/pkg/tx"
	"github.com/axiom-labs-org/core/pkg/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Execute a demo block against a genesis state",
	Long: `Seed a state store from a genesis manifest, build one block of
transactions from the first funded account, execute it with the
reference engine, and print the resulting roots.

Examples:
  # Run with a genesis file
  axiom demo -f genesis.yaml

  # Archive the executed block
  axiom demo -f genesis.yaml --data-dir ./data --txs 3`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringP("file", "f", "", "Genesis YAML file (required)")
	demoCmd.Flags().Int("txs", 2, "Number of transactions to execute")
	demoCmd.Flags().String("data-dir", "", "Archive executed blocks under this directory")
	_ = demoCmd.MarkFlagRequired("file")
}

func runDemo(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")
	txCount, _ := cmd.Flags().GetInt("txs")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	manifest, err := genesis.Load(filename)
	if err != nil {
		return err
	}
	if len(manifest.Accounts) == 0 {
		return fmt.Errorf("genesis manifest has no accounts")
	}

	store := state.NewStore()
	if err := manifest.Apply(store); err != nil {
		return err
	}

	cfg := &chain.Config{
		Store:  store,
		Engine: engine.NewReferenceEngine(),
	}
	if dataDir != "" {
		archive, err := storage.NewBoltArchive(dataDir)
		if err != nil {
			return err
		}
		defer archive.Close()
		cfg.Archive = archive
	}

	c, err := chain.NewChain(cfg)
	if err != nil {
		return err
	}

	signer, err := types.AddressFromHex(manifest.Accounts[0].Address)
	if err != nil {
		return err
	}

	transactions := make([]*exttx.ExternalTransaction, 0, txCount)
	for i := 0; i < txCount; i++ {
		cell, err := tx.NewTransactionCell(
			c.NextSlot(),
			state.ReadSet{},
			tx.WriteIntentSet{},
			tx.CallData{Target: state.BalanceObjectID(signer)},
		)
		if err != nil {
			return err
		}
		transactions = append(transactions, &exttx.ExternalTransaction{
			Signer: signer,
			// The nonce object version is 0 after the first tx and then
			// increments, so in-block nonces run 0, 0, 1, 2, ...
			Nonce: noncesFor(i),
			Cells: []*tx.TransactionCell{cell},
		})
	}

	b, result, err := c.Extend(transactions)
	if err != nil {
		return err
	}

	logger := log.Component("demo")
	for i, res := range result.TxResults {
		if res.Success() {
			logger.Info().Int("index", i).Uint64("fee", res.FeeCharged).Msg("transaction applied")
		} else {
			logger.Warn().Int("index", i).Err(res.Err).Msg("transaction failed")
		}
	}

	fmt.Printf("Block hash:    %s\n", b.Hash())
	fmt.Printf("State root:    %s\n", b.StateRoot)
	fmt.Printf("Receipts root: %s\n", b.ReceiptsRoot)
	return nil
}

// noncesFor maps a transaction's index in the demo block to the nonce the
// pipeline expects: the first transaction creates the nonce object at
// version 0, the second sees version 0, and each later one sees index-1.
func noncesFor(index int) state.Version {
	if index <= 1 {
		return 0
	}
	return state.Version(index - 1)
}
