package services

import (
	"context"
	"encoding/json"

	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/metrics"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// transactionEvent is the wire form of a ledger movement published to Kafka.
type transactionEvent struct {
	TransactionID    string `json:"transaction_id"`
	ReferenceCode    string `json:"reference_code"`
	FromWalletID     string `json:"from_wallet_id"`
	ToWalletID       string `json:"to_wallet_id"`
	Amount           int64  `json:"amount"`
	Status           string `json:"status"`
	Purpose          string `json:"purpose"`
	PaymentRequestID string `json:"payment_request_id,omitempty"`
	Timestamp        int64  `json:"timestamp"`
}

// publishTransaction publishes a ledger record to Kafka. Publishing is
// best-effort and fires before the per-request transaction commits: a
// broker failure loses the event, and a commit failure after a successful
// publish leaves an event for a rolled-back movement. Consumers must treat
// the ledger table, not the topic, as the source of truth.
func publishTransaction(ctx context.Context, w KafkaWriter, txn *models.TransactionDB) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := transactionEvent{
		TransactionID: txn.TransactionID.String(),
		ReferenceCode: txn.ReferenceCode,
		FromWalletID:  txn.FromWalletID.String(),
		ToWalletID:    txn.ToWalletID.String(),
		Amount:        txn.Amount,
		Status:        string(txn.Status),
		Purpose:       string(txn.Purpose),
		Timestamp:     txn.CreatedAt.Unix(),
	}
	if txn.PaymentRequestID != nil {
		event.PaymentRequestID = txn.PaymentRequestID.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.TransactionID.String()),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	metrics.TransactionsTotal.WithLabelValues(string(txn.Purpose)).Inc()
	logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
}
