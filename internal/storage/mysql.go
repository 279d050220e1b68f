package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"resume-nlp-go/internal/config"
	"resume-nlp-go/internal/storage/models"
)

var mysqlTracer = otel.Tracer("resume-nlp-go/storage/mysql")

// GormTracingPlugin 是一个GORM插件，用于向OpenTelemetry中添加数据库操作的追踪点
type GormTracingPlugin struct {
	tracer   trace.Tracer
	dbName   string
	skipHook bool
}

// Name 返回插件名称
func (p *GormTracingPlugin) Name() string {
	return "GormOpenTelemetryPlugin"
}

// Initialize 注册GORM回调以启用追踪
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Create().Before("gorm:create").Register("otel:before_create", p.before("CREATE")); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("otel:after_create", p.after()); err != nil {
		return err
	}

	if err := cb.Query().Before("gorm:query").Register("otel:before_query", p.before("SELECT")); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("otel:after_query", p.after()); err != nil {
		return err
	}

	if err := cb.Update().Before("gorm:update").Register("otel:before_update", p.before("UPDATE")); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("otel:after_update", p.after()); err != nil {
		return err
	}

	if err := cb.Delete().Before("gorm:delete").Register("otel:before_delete", p.before("DELETE")); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("otel:after_delete", p.after()); err != nil {
		return err
	}

	return nil
}

// before 返回在GORM操作之前执行的回调函数
func (p *GormTracingPlugin) before(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if p.skipHook && db.Statement.SkipHooks {
			return
		}

		ctx := db.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}

		tableName := db.Statement.Table
		if tableName == "" {
			tableName = "unknown"
		}

		spanName := fmt.Sprintf("%s %s", operation, tableName)
		newCtx, span := p.tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				semconv.DBSystemMySQL,
				attribute.String("db.name", p.dbName),
				attribute.String("db.operation", operation),
				attribute.String("db.sql.table", tableName),
			),
		)

		// 将span保存在DB上下文中，以便在after回调中使用
		db.Statement.Context = context.WithValue(newCtx, "otel-span", span)
	}
}

// after 返回在GORM操作之后执行的回调函数
func (p *GormTracingPlugin) after() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		span, ok := db.Statement.Context.Value("otel-span").(trace.Span)
		if !ok {
			return
		}
		defer span.End()

		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))

		// ErrRecordNotFound 是业务逻辑正常情况的一部分，不作为错误处理
		if db.Error != nil {
			if errors.Is(db.Error, gorm.ErrRecordNotFound) {
				span.SetAttributes(attribute.String("error.type", "record_not_found"))
				span.SetStatus(codes.Ok, "record not found")
			} else {
				span.SetAttributes(attribute.String("error.type", "database_error"))
				span.RecordError(db.Error)
				span.SetStatus(codes.Error, db.Error.Error())
			}
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}
}

// NewGormTracingPlugin 创建一个新的GORM追踪插件
func NewGormTracingPlugin(dbName string) *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer:   mysqlTracer,
		dbName:   dbName,
		skipHook: true,
	}
}

// MySQL 提供关系数据库功能
type MySQL struct {
	db  *gorm.DB
	cfg *config.MySQLConfig
}

// NewMySQL 创建MySQL客户端
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MySQL配置不能为空")
	}

	// 构建DSN，添加超时设置
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
		cfg.ConnectTimeoutSeconds, cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds)

	// 配置GORM日志级别
	var logLevel logger.LogLevel
	switch cfg.LogLevel {
	case 1:
		logLevel = logger.Silent
	case 2:
		logLevel = logger.Error
	case 3:
		logLevel = logger.Warn
	default:
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logLevel),
		PrepareStmt:                              true, // 开启预编译语句缓存
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	// 设置连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	m := &MySQL{
		db:  db,
		cfg: cfg,
	}

	// 注册OpenTelemetry追踪插件
	if err := db.Use(NewGormTracingPlugin(cfg.Database)); err != nil {
		return nil, fmt.Errorf("注册追踪插件失败: %w", err)
	}

	// 自动迁移表结构
	if err := m.autoMigrateSchema(); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("自动迁移数据库结构失败: %w", err)
	}

	log.Println("成功连接到MySQL并自动迁移数据库结构")
	return m, nil
}

// autoMigrateSchema 使用GORM自动迁移数据库表结构
func (m *MySQL) autoMigrateSchema() error {
	// 迁移期间关闭SQL日志打印
	silentDB := m.db.Session(&gorm.Session{Logger: logger.Default.LogMode(logger.Silent)})

	if err := silentDB.AutoMigrate(
		&models.CandidateProfileRecord{},
	); err != nil {
		return fmt.Errorf("GORM自动迁移失败: %w", err)
	}
	return nil
}

// DB 返回GORM数据库连接实例
func (m *MySQL) DB() *gorm.DB {
	return m.db
}

// Close 关闭数据库连接
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	return sqlDB.Close()
}

// SaveProfileRecord 保存画像记录。raw_text_md5冲突时覆盖旧画像，实现幂等重放。
func (m *MySQL) SaveProfileRecord(ctx context.Context, record *models.CandidateProfileRecord) error {
	ctx, span := mysqlTracer.Start(ctx, "MySQL.SaveProfileRecord",
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		semconv.DBSystemMySQL,
		attribute.String("db.name", m.cfg.Database),
		attribute.String("db.operation", "INSERT_ON_DUPLICATE"),
		attribute.String("db.sql.table", models.CandidateProfileRecord{}.TableName()),
	)

	err := m.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "raw_text_md5"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"submission_uuid", "name", "email", "phone",
				"seniority_level", "total_experience_years",
				"profile_json", "model_version",
			}),
		}).Create(record).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetProfileByTextMD5 按解析文本MD5查询画像记录，未找到返回 gorm.ErrRecordNotFound
func (m *MySQL) GetProfileByTextMD5(ctx context.Context, textMD5 string) (*models.CandidateProfileRecord, error) {
	var record models.CandidateProfileRecord
	err := m.db.WithContext(ctx).Where("raw_text_md5 = ?", textMD5).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetProfileByUUID 按画像UUID查询画像记录
func (m *MySQL) GetProfileByUUID(ctx context.Context, profileUUID string) (*models.CandidateProfileRecord, error) {
	var record models.CandidateProfileRecord
	err := m.db.WithContext(ctx).Where("profile_uuid = ?", profileUUID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
