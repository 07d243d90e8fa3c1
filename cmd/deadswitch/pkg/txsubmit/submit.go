// Package txsubmit signs and submits switch transactions to the processor
// address and waits for them to land.
package txsubmit

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/useraccount"
	"github.com/bc1plainview/opswitch-v2/deadswitch/address"
	"github.com/bc1plainview/opswitch-v2/deadswitch/switchtx"
)

// Submit encodes one operation, signs it with the user's key and sends it to
// the switch processor. It blocks until the transaction is mined and fails
// if the receipt reports a revert.
func Submit(ctx context.Context, nodeURL string, account *useraccount.UserAccount, op string, args any) (*types.Receipt, error) {

	encodedArgs, err := rlp.EncodeToBytes(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s arguments: %w", op, err)
	}

	txData, err := rlp.EncodeToBytes(&switchtx.SwitchTransaction{Op: op, Args: encodedArgs})
	if err != nil {
		return nil, fmt.Errorf("failed to encode switch tx: %w", err)
	}

	client, err := ethclient.DialContext(ctx, nodeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to node: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	nonce, err := client.PendingNonceAt(ctx, account.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	msg := ethereum.CallMsg{
		From: account.Address,
		To:   &address.SwitchProcessorAddress,
		Data: txData,
	}

	gasLimit, err := client.EstimateGas(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	gasTipCap, err := client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas tip cap: %w", err)
	}

	gasFeeCap, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas fee cap: %w", err)
	}

	tx := &types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		Gas:       gasLimit,
		Data:      txData,
		To:        &address.SwitchProcessorAddress,
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
	}

	signer := types.LatestSignerForChainID(chainID)

	signedTx, err := types.SignNewTx(account.PrivateKey, signer, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	err = client.SendTransaction(ctx, signedTx)
	if err != nil {
		return nil, fmt.Errorf("failed to send tx: %w", err)
	}

	receipt, err := bind.WaitMinedHash(ctx, client, signedTx.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to wait for tx: %w", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("tx %s failed", signedTx.Hash())
	}

	return receipt, nil
}
