package extractor

import (
	"strconv"
	"strings"

	"resume-nlp-go/internal/types"
)

// 证书行最短长度，更短的行视为噪声
const minCertificationLineLength = 5

// ExtractCertifications 提取证书列表。仅使用certifications章节区间，
// 无标记返回空列表。标题行之后的每个非空长行即一条证书。
func ExtractCertifications(text string, sections []types.SectionMarker) []types.Certification {
	certifications := []types.Certification{}

	spanText, ok := sectionText(text, sections, types.SectionCertifications)
	if !ok {
		return certifications
	}

	lines := strings.Split(spanText, "\n")
	if len(lines) <= 1 {
		return certifications
	}

	// 跳过标题行
	for _, rawLine := range lines[1:] {
		line := strings.TrimSpace(rawLine)
		if line == "" || len(line) <= minCertificationLineLength {
			continue
		}

		cert := types.Certification{
			Name: strings.TrimLeft(line, "•-* "),
		}
		if years := bareYearRe.FindAllString(line, -1); len(years) > 0 {
			if year, err := strconv.Atoi(years[len(years)-1]); err == nil {
				cert.Date = &year
			}
		}
		certifications = append(certifications, cert)
	}
	return certifications
}
