package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"resume-nlp-go/internal/config"
)

// ObjectStorage 对象存储接口
type ObjectStorage interface {
	// GetParsedText 下载解析文本
	GetParsedText(ctx context.Context, objectName string) (string, error)

	// UploadProfileJSON 上传画像JSON，返回对象路径
	UploadProfileJSON(ctx context.Context, profileUUID string, data []byte) (string, error)

	// GetPresignedURL 获取预签名URL
	GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
}

// 确保MinIO实现了ObjectStorage接口
var _ ObjectStorage = (*MinIO)(nil)

// MinIO 提供对象存储功能
type MinIO struct {
	client         *minio.Client
	cfg            *config.MinIOConfig
	parsedBucket   string
	profilesBucket string
	logger         *log.Logger
}

// NewMinIO 创建MinIO客户端
func NewMinIO(cfg *config.MinIOConfig, logger *log.Logger) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	parsedBucket := cfg.ParsedTextBucket
	if parsedBucket == "" {
		parsedBucket = "parsed-text"
	}
	profilesBucket := cfg.ProfilesBucket
	if profilesBucket == "" {
		profilesBucket = "candidate-profiles"
	}

	m := &MinIO{
		client:         client,
		cfg:            cfg,
		parsedBucket:   parsedBucket,
		profilesBucket: profilesBucket,
		logger:         logger,
	}

	// 确保存储桶存在
	if err := m.ensureBucketExists(parsedBucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保解析文本存储桶 %s 存在失败: %w", parsedBucket, err)
	}
	if err := m.ensureBucketExists(profilesBucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保画像存储桶 %s 存在失败: %w", profilesBucket, err)
	}

	m.logger.Printf("[MinIO] Client initialized successfully for endpoint: %s", cfg.Endpoint)
	return m, nil
}

// ensureBucketExists 确保存储桶存在
func (m *MinIO) ensureBucketExists(bucketName, location string) error {
	exists, err := m.client.BucketExists(context.Background(), bucketName)
	if err != nil {
		return fmt.Errorf("检查存储桶 %s 是否存在时出错: %w", bucketName, err)
	}
	if !exists {
		m.logger.Printf("[MinIO] Bucket %s does not exist, attempting to create...", bucketName)
		if err := m.client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("创建存储桶 %s 失败: %w", bucketName, err)
		}
	}
	return nil
}

// GetParsedText 从解析文本存储桶下载纯文本
func (m *MinIO) GetParsedText(ctx context.Context, objectName string) (string, error) {
	obj, err := m.client.GetObject(ctx, m.parsedBucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("获取解析文本对象 %s 失败: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("读取解析文本对象 %s 失败: %w", objectName, err)
	}
	return string(data), nil
}

// UploadProfileJSON 把画像JSON上传到画像存储桶，对象名为 {profileUUID}.json
func (m *MinIO) UploadProfileJSON(ctx context.Context, profileUUID string, data []byte) (string, error) {
	objectName := profileUUID + ".json"
	_, err := m.client.PutObject(ctx, m.profilesBucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return "", fmt.Errorf("上传画像JSON %s 失败: %w", objectName, err)
	}
	m.logger.Printf("[MinIO] Uploaded profile JSON: %s/%s (%d bytes)", m.profilesBucket, objectName, len(data))
	return objectName, nil
}

// ProfilesBucket 返回画像存储桶名
func (m *MinIO) ProfilesBucket() string {
	return m.profilesBucket
}

// GetPresignedURL 获取对象的预签名下载URL
func (m *MinIO) GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("生成预签名URL失败: %w", err)
	}
	return u.String(), nil
}
