package types

// SectionType 表示简历章节类型，封闭枚举
type SectionType string

const (
	// SectionContact 联系方式章节
	SectionContact SectionType = "contact"
	// SectionSummary 个人总结章节
	SectionSummary SectionType = "summary"
	// SectionExperience 工作经历章节
	SectionExperience SectionType = "experience"
	// SectionEducation 教育经历章节
	SectionEducation SectionType = "education"
	// SectionSkills 技能章节
	SectionSkills SectionType = "skills"
	// SectionCertifications 证书章节
	SectionCertifications SectionType = "certifications"
	// SectionProjects 项目经历章节
	SectionProjects SectionType = "projects"
	// SectionAwards 获奖经历章节
	SectionAwards SectionType = "awards"
	// SectionPublications 论文发表章节
	SectionPublications SectionType = "publications"
	// SectionLanguages 语言能力章节
	SectionLanguages SectionType = "languages"
)

// SectionMarker 表示检测到的章节标题行及其在文档中的位置
type SectionMarker struct {
	Type       SectionType `json:"type"`
	Header     string      `json:"header"`      // 原始标题行文本（去除首尾空白）
	LineNumber int         `json:"line_number"` // 标题行所在行号
	Position   int         `json:"position"`    // 标题文本在全文中首次出现的字节偏移
}

// RawDocument 解析服务输出的原始文档：纯文本加已检测的章节标记
type RawDocument struct {
	Text     string          `json:"text"`
	Sections []SectionMarker `json:"sections"`
}

// ContactInfo 联系方式信息，所有字段均可缺失
type ContactInfo struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Location *string `json:"location"`
}

// ExperienceEntry 一段工作经历
type ExperienceEntry struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       *string  `json:"location"`
	StartDate      *string  `json:"start_date"`
	EndDate        string   `json:"end_date"` // 缺省为 "Present"
	DurationMonths *int     `json:"duration_months"`
	Description    []string `json:"description"`
	Technologies   []string `json:"technologies"`
}

// EducationEntry 一条教育经历
type EducationEntry struct {
	Degree         string   `json:"degree"`
	FieldOfStudy   string   `json:"field_of_study"`
	Institution    string   `json:"institution"`
	Location       *string  `json:"location"`
	GraduationYear *int     `json:"graduation_year"`
	GPA            *float64 `json:"gpa"`
}

// SkillSet 按固定类别分桶的技能集合，桶内去重且保持插入顺序
type SkillSet struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	Databases            []string `json:"databases"`
	Tools                []string `json:"tools"`
	Cloud                []string `json:"cloud"`
	SoftSkills           []string `json:"soft_skills"`
	Other                []string `json:"other"`
}

// 技能类别常量，与SkillSet的JSON字段一一对应
const (
	CategoryProgrammingLanguages = "programming_languages"
	CategoryFrameworks           = "frameworks"
	CategoryDatabases            = "databases"
	CategoryTools                = "tools"
	CategoryCloud                = "cloud"
	CategorySoftSkills           = "soft_skills"
	CategoryOther                = "other"
)

// NewSkillSet 创建带空桶的技能集合，保证JSON序列化输出 [] 而不是 null
func NewSkillSet() SkillSet {
	return SkillSet{
		ProgrammingLanguages: []string{},
		Frameworks:           []string{},
		Databases:            []string{},
		Tools:                []string{},
		Cloud:                []string{},
		SoftSkills:           []string{},
		Other:                []string{},
	}
}

// bucket 返回类别对应的桶；未知类别归入 other
func (s *SkillSet) bucket(category string) *[]string {
	switch category {
	case CategoryProgrammingLanguages:
		return &s.ProgrammingLanguages
	case CategoryFrameworks:
		return &s.Frameworks
	case CategoryDatabases:
		return &s.Databases
	case CategoryTools:
		return &s.Tools
	case CategoryCloud:
		return &s.Cloud
	case CategorySoftSkills:
		return &s.SoftSkills
	default:
		return &s.Other
	}
}

// Add 将规范技能名加入对应类别桶，重复添加不生效
func (s *SkillSet) Add(category, skill string) {
	b := s.bucket(category)
	for _, existing := range *b {
		if existing == skill {
			return
		}
	}
	*b = append(*b, skill)
}

// Contains 判断类别桶中是否包含指定技能
func (s *SkillSet) Contains(category, skill string) bool {
	for _, existing := range *s.bucket(category) {
		if existing == skill {
			return true
		}
	}
	return false
}

// Certification 一条证书记录
type Certification struct {
	Name   string  `json:"name"`
	Issuer *string `json:"issuer"`
	Date   *int    `json:"date"` // 证书年份
}

// LanguageProficiency 语言及熟练程度
type LanguageProficiency struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// SeniorityLevel 资历级别
type SeniorityLevel string

const (
	SeniorityEntry  SeniorityLevel = "Entry"
	SeniorityMid    SeniorityLevel = "Mid-Level"
	SenioritySenior SeniorityLevel = "Senior"
	SeniorityLead   SeniorityLevel = "Lead/Principal"
)

// Metadata 由工作经历推导出的元数据
type Metadata struct {
	TotalExperienceYears float64        `json:"total_experience_years"`
	SeniorityLevel       SeniorityLevel `json:"seniority_level"`
	Industries           []string       `json:"industries"`
	JobTitles            []string       `json:"job_titles"`
}

// CandidateProfile 候选人结构化画像，提取流程的最终输出
type CandidateProfile struct {
	ContactInfo    ContactInfo           `json:"contact_info"`
	Summary        *string               `json:"summary"`
	Experience     []ExperienceEntry     `json:"experience"`
	Education      []EducationEntry      `json:"education"`
	Skills         SkillSet              `json:"skills"`
	Certifications []Certification       `json:"certifications"`
	Languages      []LanguageProficiency `json:"languages"`
	Metadata       Metadata              `json:"metadata"`
	ExtractedAt    string                `json:"extracted_at"`  // UTC ISO-8601
	ModelVersion   string                `json:"model_version"`
}
