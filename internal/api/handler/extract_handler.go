package handler

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resume-nlp-go/internal/config"
	"resume-nlp-go/internal/constants"
	"resume-nlp-go/internal/extractor"
	"resume-nlp-go/internal/logger"
	"resume-nlp-go/internal/storage"
	"resume-nlp-go/internal/storage/models"
	"resume-nlp-go/internal/tracing"
	"resume-nlp-go/internal/types"
)

var handlerTracer = otel.Tracer("resume-nlp-go/api/handler")

// ExtractHandler 画像提取处理器，协调提取流程与持久化
type ExtractHandler struct {
	cfg     *config.Config
	storage *storage.Storage
	builder *extractor.ProfileBuilder
}

// NewExtractHandler 创建画像提取处理器
func NewExtractHandler(
	cfg *config.Config,
	storage *storage.Storage,
	builder *extractor.ProfileBuilder,
) *ExtractHandler {
	return &ExtractHandler{
		cfg:     cfg,
		storage: storage,
		builder: builder,
	}
}

// ExtractResult 提取结果
type ExtractResult struct {
	Profile     *types.CandidateProfile
	ProfileUUID string
	FromCache   bool
}

// HandleExtract 处理一次画像提取。
// 以解析文本MD5为幂等键：缓存命中直接返回，未命中则构建画像并尽力持久化。
func (h *ExtractHandler) HandleExtract(ctx context.Context, submissionUUID string, doc types.RawDocument) (*ExtractResult, error) {
	ctx, span := handlerTracer.Start(ctx, "ExtractHandler.HandleExtract",
		trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	// 上游未携带章节标记时在此检测，章节级提取器依赖这些区间
	if len(doc.Sections) == 0 {
		doc.Sections = extractor.DetectSections(doc.Text)
	}

	sum := md5.Sum([]byte(doc.Text))
	textMD5 := hex.EncodeToString(sum[:])
	span.SetAttributes(
		attribute.String("resume.text_md5", textMD5),
		attribute.Int("resume.text_length", len(doc.Text)),
		attribute.String("resume.content_preview", tracing.SafeResumeContent(doc.Text)),
	)

	// 1. 查缓存（Redis可选）
	if h.storage != nil && h.storage.Redis != nil {
		cached, err := h.storage.Redis.GetCachedProfileJSON(ctx, textMD5)
		if err == nil {
			var profile types.CandidateProfile
			if err := json.Unmarshal(cached, &profile); err == nil {
				profileUUID, _ := h.storage.Redis.GetProfileUUIDByTextMD5(ctx, textMD5)
				logger.Debug().
					Str("text_md5", textMD5).
					Msg("画像缓存命中")
				span.SetAttributes(attribute.Bool("cache.hit", true))
				span.SetStatus(codes.Ok, "")
				return &ExtractResult{Profile: &profile, ProfileUUID: profileUUID, FromCache: true}, nil
			}
			// 缓存内容损坏，走重建路径
			logger.Warn().
				Str("text_md5", textMD5).
				Msg("缓存的画像JSON反序列化失败，重新构建")
		} else if err != storage.ErrNotFound {
			logger.Warn().
				Err(err).
				Str("text_md5", textMD5).
				Msg("查询画像缓存失败")
		}
	}

	// 2. 查MySQL，画像可能在缓存过期后依然存在
	if h.storage != nil && h.storage.MySQL != nil {
		record, err := h.storage.MySQL.GetProfileByTextMD5(ctx, textMD5)
		if err == nil {
			var profile types.CandidateProfile
			if err := json.Unmarshal(record.ProfileJSON, &profile); err == nil {
				// 回填缓存
				if h.storage.Redis != nil {
					if err := h.storage.Redis.CacheProfileJSON(ctx, textMD5, record.ProfileJSON); err != nil {
						logger.Warn().
							Err(err).
							Str("text_md5", textMD5).
							Msg("回填画像缓存失败")
					}
				}
				logger.Debug().
					Str("text_md5", textMD5).
					Str("profile_uuid", record.ProfileUUID).
					Msg("MySQL画像记录命中")
				span.SetAttributes(attribute.Bool("cache.hit", true))
				span.SetStatus(codes.Ok, "")
				return &ExtractResult{Profile: &profile, ProfileUUID: record.ProfileUUID, FromCache: true}, nil
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn().
				Err(err).
				Str("text_md5", textMD5).
				Msg("查询MySQL画像记录失败")
		}
	}

	// 3. 构建画像
	profile, err := h.builder.Build(ctx, doc)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		return nil, fmt.Errorf("构建候选人画像失败: %w", err)
	}

	profileUUID := uuid.NewString()

	// 4. 尽力持久化，失败只记录不阻塞响应
	h.persistProfile(ctx, submissionUUID, profileUUID, textMD5, profile)

	span.SetAttributes(attribute.Bool("cache.hit", false))
	span.SetStatus(codes.Ok, "")
	return &ExtractResult{Profile: profile, ProfileUUID: profileUUID}, nil
}

// persistProfile 把画像写入MySQL/Redis/MinIO并发布提取完成事件。
// 任一步失败不影响其余步骤。
func (h *ExtractHandler) persistProfile(ctx context.Context, submissionUUID, profileUUID, textMD5 string, profile *types.CandidateProfile) {
	if h.storage == nil {
		return
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		logger.Error().
			Err(err).
			Str("profile_uuid", profileUUID).
			Msg("序列化画像JSON失败，跳过持久化")
		return
	}

	if h.storage.MySQL != nil {
		record := &models.CandidateProfileRecord{
			ProfileUUID:          profileUUID,
			SubmissionUUID:       submissionUUID,
			RawTextMD5:           textMD5,
			Name:                 profile.ContactInfo.Name,
			Email:                profile.ContactInfo.Email,
			Phone:                profile.ContactInfo.Phone,
			SeniorityLevel:       string(profile.Metadata.SeniorityLevel),
			TotalExperienceYears: profile.Metadata.TotalExperienceYears,
			ProfileJSON:          datatypes.JSON(profileJSON),
			ModelVersion:         profile.ModelVersion,
		}
		if err := h.storage.MySQL.SaveProfileRecord(ctx, record); err != nil {
			logger.Error().
				Err(err).
				Str("profile_uuid", profileUUID).
				Msg("保存画像记录到MySQL失败")
		}
	}

	if h.storage.Redis != nil {
		if err := h.storage.Redis.CacheProfileJSON(ctx, textMD5, profileJSON); err != nil {
			logger.Warn().
				Err(err).
				Str("text_md5", textMD5).
				Msg("缓存画像JSON到Redis失败")
		}
		if err := h.storage.Redis.MapTextMD5ToProfileUUID(ctx, textMD5, profileUUID); err != nil {
			logger.Warn().
				Err(err).
				Str("text_md5", textMD5).
				Msg("记录MD5到画像UUID映射失败")
		}
	}

	if h.storage.MinIO != nil {
		if _, err := h.storage.MinIO.UploadProfileJSON(ctx, profileUUID, profileJSON); err != nil {
			logger.Warn().
				Err(err).
				Str("profile_uuid", profileUUID).
				Msg("上传画像JSON到MinIO失败")
		}
	}

	if h.storage.RabbitMQ != nil {
		event := storage.ProfileExtractedMessage{
			SubmissionUUID: submissionUUID,
			ProfileUUID:    profileUUID,
			RawTextMD5:     textMD5,
			ModelVersion:   profile.ModelVersion,
			ExtractedAt:    time.Now().UTC(),
			Status:         constants.StatusExtractionCompleted,
		}
		if err := h.storage.RabbitMQ.PublishJSON(
			ctx,
			h.cfg.RabbitMQ.ResumeEventsExchange,
			h.cfg.RabbitMQ.ExtractedRoutingKey,
			event,
			true, // 持久化
		); err != nil {
			logger.Warn().
				Err(err).
				Str("profile_uuid", profileUUID).
				Msg("发布画像提取完成事件失败")
		}
	}
}

// ProfileDetail 画像查询结果
type ProfileDetail struct {
	ProfileUUID  string
	ModelVersion string
	Profile      *types.CandidateProfile
	DownloadURL  string
}

// HandleGetProfile 按画像UUID查询已提取的画像。
// 未找到时返回 gorm.ErrRecordNotFound。
func (h *ExtractHandler) HandleGetProfile(ctx context.Context, profileUUID string) (*ProfileDetail, error) {
	if h.storage == nil || h.storage.MySQL == nil {
		return nil, fmt.Errorf("MySQL未初始化，无法查询画像")
	}

	record, err := h.storage.MySQL.GetProfileByUUID(ctx, profileUUID)
	if err != nil {
		return nil, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(record.ProfileJSON, &profile); err != nil {
		return nil, fmt.Errorf("反序列化画像JSON失败: %w", err)
	}

	detail := &ProfileDetail{
		ProfileUUID:  record.ProfileUUID,
		ModelVersion: record.ModelVersion,
		Profile:      &profile,
	}

	// 预签名下载链接为可选增强，生成失败不影响查询
	if h.storage.MinIO != nil {
		url, err := h.storage.MinIO.GetPresignedURL(ctx, h.storage.MinIO.ProfilesBucket(), profileUUID+".json", time.Hour)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("profile_uuid", profileUUID).
				Msg("生成画像JSON预签名URL失败")
		} else {
			detail.DownloadURL = url
		}
	}

	return detail, nil
}

// StartParsedConsumer 启动解析完成事件消费者。
// 从队列消费ResumeParsedMessage，提取画像后发布提取完成事件。
func (h *ExtractHandler) StartParsedConsumer(ctx context.Context, prefetchCount int) error {
	if h.storage == nil || h.storage.RabbitMQ == nil {
		return fmt.Errorf("RabbitMQ未初始化，无法启动消费者")
	}

	mq := h.storage.RabbitMQ
	exchange := h.cfg.RabbitMQ.ResumeEventsExchange
	queue := h.cfg.RabbitMQ.ParsedResumeQueue
	routingKey := h.cfg.RabbitMQ.ParsedRoutingKey

	if err := mq.EnsureExchange(exchange, "topic", true); err != nil {
		return fmt.Errorf("确保交换机存在失败: %w", err)
	}
	if err := mq.EnsureQueue(queue, true); err != nil {
		return fmt.Errorf("确保队列存在失败: %w", err)
	}
	if err := mq.BindQueue(queue, exchange, routingKey); err != nil {
		return fmt.Errorf("绑定队列失败: %w", err)
	}

	_, err := mq.StartConsumer(queue, prefetchCount, func(data []byte) bool {
		msgCtx, span := handlerTracer.Start(context.Background(), "ExtractHandler.ConsumeParsedMessage",
			trace.WithSpanKind(trace.SpanKindConsumer))
		defer span.End()

		var msg storage.ResumeParsedMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Error().
				Err(err).
				Msg("反序列化解析完成消息失败，丢弃消息")
			tracing.RecordError(span, err, tracing.ErrorTypeValidation)
			return true // 不可恢复，确认以避免毒消息循环
		}
		span.SetAttributes(attribute.String("submission_uuid", msg.SubmissionUUID))

		// 去重快速路径：文本MD5已见过且画像已落库时直接确认
		if h.storage.Redis != nil && msg.RawTextMD5 != "" {
			seen, err := h.storage.Redis.CheckAndAddTextMD5(msgCtx, msg.RawTextMD5)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("raw_text_md5", msg.RawTextMD5).
					Msg("查询文本MD5去重集合失败，继续处理")
			} else if seen {
				if profileUUID, err := h.storage.Redis.GetProfileUUIDByTextMD5(msgCtx, msg.RawTextMD5); err == nil && profileUUID != "" {
					logger.Info().
						Str("submission_uuid", msg.SubmissionUUID).
						Str("profile_uuid", profileUUID).
						Msg("文本MD5已处理过，跳过重复提取")
					span.SetAttributes(attribute.Bool("dedup.skipped", true))
					span.SetStatus(codes.Ok, "")
					return true
				}
			}
		}

		text, err := h.resolveParsedText(msgCtx, &msg)
		if err != nil {
			logger.Error().
				Err(err).
				Str("submission_uuid", msg.SubmissionUUID).
				Msg("获取解析文本失败，重新入队")
			tracing.RecordError(span, err, tracing.ErrorTypeObjectStorage)
			tracing.RecordRabbitMQNack(span, msg.SubmissionUUID, "parsed text unavailable")
			return false
		}

		doc := types.RawDocument{Text: text}
		if _, err := h.HandleExtract(msgCtx, msg.SubmissionUUID, doc); err != nil {
			logger.Error().
				Err(err).
				Str("submission_uuid", msg.SubmissionUUID).
				Msg("处理解析完成消息失败，重新入队")
			tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
			tracing.RecordRabbitMQNack(span, msg.SubmissionUUID, "extraction failed")
			return false
		}

		span.SetStatus(codes.Ok, "")
		return true
	})
	if err != nil {
		return fmt.Errorf("启动消费者失败: %w", err)
	}

	logger.Info().
		Str("queue", queue).
		Int("prefetch_count", prefetchCount).
		Msg("解析完成事件消费者已启动")
	return nil
}

// resolveParsedText 取出消息中的解析文本：优先使用内联文本，否则从MinIO下载
func (h *ExtractHandler) resolveParsedText(ctx context.Context, msg *storage.ResumeParsedMessage) (string, error) {
	if msg.ParsedText != "" {
		return msg.ParsedText, nil
	}

	objectKey := msg.ParsedTextPathOSS
	if objectKey == "" {
		objectKey = msg.ParsedTextObjectKey
	}
	if objectKey == "" {
		return "", fmt.Errorf("消息中既无内联文本也无对象路径")
	}

	if h.storage.MinIO == nil {
		return "", fmt.Errorf("MinIO未初始化，无法下载解析文本 %s", objectKey)
	}
	return h.storage.MinIO.GetParsedText(ctx, objectKey)
}
