package models

import (
	"time"

	"gorm.io/datatypes"
)

// CandidateProfileRecord 候选人画像的持久化记录。
// 结构化画像整体以JSON列存储，少量高频筛选字段冗余为独立列。
type CandidateProfileRecord struct {
	ProfileUUID    string `gorm:"type:char(36);primaryKey"`
	SubmissionUUID string `gorm:"type:char(36);index:idx_cp_submission_uuid"`
	// 解析文本的MD5，提取去重的依据
	RawTextMD5 string `gorm:"type:char(32);uniqueIndex:idx_cp_raw_text_md5_unique"`

	// 画像冗余列，供列表查询与筛选
	Name                 *string `gorm:"type:varchar(255)"`
	Email                *string `gorm:"type:varchar(255);index:idx_cp_email"`
	Phone                *string `gorm:"type:varchar(64)"`
	SeniorityLevel       string  `gorm:"type:varchar(32);index:idx_cp_seniority_level"`
	TotalExperienceYears float64 `gorm:"type:decimal(5,1)"`

	// 完整画像JSON
	ProfileJSON datatypes.JSON `gorm:"type:json"`

	ModelVersion string    `gorm:"type:varchar(50)"`
	CreatedAt    time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt    time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (CandidateProfileRecord) TableName() string {
	return "candidate_profiles"
}
