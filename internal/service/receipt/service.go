package receipt

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"kakeibo-dashboard/internal/config"
	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/repository"
)

const downloadURLExpiry = time.Hour

type Service interface {
	Upload(ctx context.Context, userID, transactionID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Receipt, error)
	ListByTransaction(ctx context.Context, userID, transactionID uuid.UUID) ([]domain.Receipt, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type service struct {
	receiptRepo repository.ReceiptRepository
	txRepo      repository.TransactionRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(receiptRepo repository.ReceiptRepository, txRepo repository.TransactionRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		receiptRepo: receiptRepo,
		txRepo:      txRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) Upload(ctx context.Context, userID, transactionID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Receipt, error) {
	// Ownership gate: the receipt can only attach to the caller's own
	// transaction, a foreign transaction id reads as missing.
	if _, err := s.txRepo.GetByID(ctx, transactionID, userID); err != nil {
		return nil, err
	}

	receiptID := uuid.New()
	storagePath := fmt.Sprintf("receipts/%s/%s", userID, receiptID)

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload receipt: %w", err)
	}

	receipt := &domain.Receipt{
		ID:            receiptID,
		TransactionID: transactionID,
		UserID:        userID,
		FileName:      fileName,
		FileSize:      fileSize,
		MimeType:      mimeType,
		StoragePath:   storagePath,
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	receipt.URL = s.downloadURL(ctx, storagePath)
	return receipt, nil
}

func (s *service) ListByTransaction(ctx context.Context, userID, transactionID uuid.UUID) ([]domain.Receipt, error) {
	if _, err := s.txRepo.GetByID(ctx, transactionID, userID); err != nil {
		return nil, err
	}

	receipts, err := s.receiptRepo.ListByTransaction(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}
	if receipts == nil {
		receipts = []domain.Receipt{}
	}

	for i := range receipts {
		receipts[i].URL = s.downloadURL(ctx, receipts[i].StoragePath)
	}
	return receipts, nil
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.receiptRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, receipt.StoragePath, minio.RemoveObjectOptions{})
	return nil
}

func (s *service) downloadURL(ctx context.Context, storagePath string) string {
	presigned, err := s.minioClient.PresignedGetObject(ctx, s.cfg.MinIOBucket, storagePath, downloadURLExpiry, nil)
	if err != nil {
		return ""
	}
	return presigned.String()
}
