package extractor

import (
	"regexp"
	"strings"

	"resume-nlp-go/internal/types"
)

// SkillEntry 技能本体中的一条记录：规范名、别名集合、所属类别
type SkillEntry struct {
	Canonical string
	Aliases   []string
	Category  string
}

// skillOntology 静态技能目录。进程级只读数据，声明顺序即输出顺序。
var skillOntology = []SkillEntry{
	// 编程语言
	{"Python", []string{"python", "py", "python3"}, types.CategoryProgrammingLanguages},
	{"JavaScript", []string{"javascript", "js", "es6", "es2015"}, types.CategoryProgrammingLanguages},
	{"TypeScript", []string{"typescript", "ts"}, types.CategoryProgrammingLanguages},
	{"Java", []string{"java", "java8", "java11"}, types.CategoryProgrammingLanguages},
	{"C++", []string{"c++", "cpp"}, types.CategoryProgrammingLanguages},
	{"C#", []string{"c#", "csharp"}, types.CategoryProgrammingLanguages},
	{"Go", []string{"go", "golang"}, types.CategoryProgrammingLanguages},
	{"Rust", []string{"rust"}, types.CategoryProgrammingLanguages},
	{"PHP", []string{"php"}, types.CategoryProgrammingLanguages},
	{"Ruby", []string{"ruby"}, types.CategoryProgrammingLanguages},
	{"Swift", []string{"swift", "ios"}, types.CategoryProgrammingLanguages},
	{"Kotlin", []string{"kotlin", "android"}, types.CategoryProgrammingLanguages},

	// 前端
	{"React", []string{"react", "reactjs", "react.js"}, types.CategoryFrameworks},
	{"Next.js", []string{"next", "nextjs", "next.js"}, types.CategoryFrameworks},
	{"Vue.js", []string{"vue", "vuejs", "vue.js"}, types.CategoryFrameworks},
	{"Angular", []string{"angular", "angularjs"}, types.CategoryFrameworks},
	{"Svelte", []string{"svelte"}, types.CategoryFrameworks},

	// 后端
	{"Node.js", []string{"node", "nodejs", "node.js"}, types.CategoryFrameworks},
	{"Express.js", []string{"express", "expressjs"}, types.CategoryFrameworks},
	{"Django", []string{"django"}, types.CategoryFrameworks},
	{"Flask", []string{"flask"}, types.CategoryFrameworks},
	{"FastAPI", []string{"fastapi"}, types.CategoryFrameworks},
	{"Spring Boot", []string{"spring", "spring boot"}, types.CategoryFrameworks},
	{".NET", []string{"dotnet", ".net", "asp.net"}, types.CategoryFrameworks},
	{"Laravel", []string{"laravel"}, types.CategoryFrameworks},
	{"Rails", []string{"rails", "ruby on rails"}, types.CategoryFrameworks},

	// 数据库
	{"MongoDB", []string{"mongodb", "mongo"}, types.CategoryDatabases},
	{"PostgreSQL", []string{"postgresql", "postgres"}, types.CategoryDatabases},
	{"MySQL", []string{"mysql"}, types.CategoryDatabases},
	{"Redis", []string{"redis"}, types.CategoryDatabases},
	{"SQL Server", []string{"sql server", "mssql"}, types.CategoryDatabases},
	{"Oracle", []string{"oracle"}, types.CategoryDatabases},
	{"DynamoDB", []string{"dynamodb"}, types.CategoryDatabases},
	{"Cassandra", []string{"cassandra"}, types.CategoryDatabases},
	{"SQLite", []string{"sqlite"}, types.CategoryDatabases},
	{"MariaDB", []string{"mariadb"}, types.CategoryDatabases},

	// 云平台
	{"AWS", []string{"aws", "amazon web services"}, types.CategoryCloud},
	{"Azure", []string{"azure", "microsoft azure"}, types.CategoryCloud},
	{"Google Cloud", []string{"gcp", "google cloud"}, types.CategoryCloud},
	{"Heroku", []string{"heroku"}, types.CategoryCloud},
	{"DigitalOcean", []string{"digitalocean"}, types.CategoryCloud},

	// DevOps
	{"Docker", []string{"docker"}, types.CategoryTools},
	{"Kubernetes", []string{"kubernetes", "k8s"}, types.CategoryTools},
	{"Git", []string{"git", "github", "gitlab"}, types.CategoryTools},
	{"Jenkins", []string{"jenkins"}, types.CategoryTools},
	{"CI/CD", []string{"ci/cd", "cicd"}, types.CategoryTools},
	{"Terraform", []string{"terraform"}, types.CategoryTools},
	{"Ansible", []string{"ansible"}, types.CategoryTools},

	// CSS/UI
	{"Tailwind CSS", []string{"tailwind", "tailwindcss"}, types.CategoryFrameworks},
	{"Bootstrap", []string{"bootstrap"}, types.CategoryFrameworks},
	{"Material-UI", []string{"material-ui", "mui"}, types.CategoryFrameworks},
	{"Sass", []string{"sass", "scss"}, types.CategoryFrameworks},

	// 测试
	{"Jest", []string{"jest"}, types.CategoryTools},
	{"Pytest", []string{"pytest"}, types.CategoryTools},
	{"Selenium", []string{"selenium"}, types.CategoryTools},
	{"Cypress", []string{"cypress"}, types.CategoryTools},
	{"JUnit", []string{"junit"}, types.CategoryTools},

	// API
	{"REST API", []string{"rest", "rest api", "restful"}, types.CategoryOther},
	{"GraphQL", []string{"graphql"}, types.CategoryOther},
	{"gRPC", []string{"grpc"}, types.CategoryOther},

	// ML/AI
	{"TensorFlow", []string{"tensorflow", "tf"}, types.CategoryOther},
	{"PyTorch", []string{"pytorch"}, types.CategoryOther},
	{"Scikit-learn", []string{"scikit-learn", "sklearn"}, types.CategoryOther},
	{"Pandas", []string{"pandas"}, types.CategoryOther},
	{"NumPy", []string{"numpy"}, types.CategoryOther},
	{"Keras", []string{"keras"}, types.CategoryOther},

	// 移动端
	{"React Native", []string{"react native"}, types.CategoryFrameworks},
	{"Flutter", []string{"flutter"}, types.CategoryFrameworks},

	// 其他
	{"Machine Learning", []string{"machine learning", "ml"}, types.CategoryOther},
	{"Deep Learning", []string{"deep learning", "dl"}, types.CategoryOther},
	{"NLP", []string{"nlp", "natural language processing"}, types.CategoryOther},
	{"Computer Vision", []string{"computer vision", "cv"}, types.CategoryOther},
	{"Microservices", []string{"microservices"}, types.CategoryOther},
	{"Agile", []string{"agile", "scrum"}, types.CategorySoftSkills},
	{"Linux", []string{"linux", "unix"}, types.CategoryOther},
}

// skillAliasRegexps 每条本体记录预编译的别名匹配正则（词边界、忽略大小写）。
// 与本体一起在包初始化时构建，之后只读共享。
var skillAliasRegexps = buildAliasRegexps(skillOntology)

func buildAliasRegexps(ontology []SkillEntry) []*regexp.Regexp {
	regexps := make([]*regexp.Regexp, len(ontology))
	for i, entry := range ontology {
		quoted := make([]string, len(entry.Aliases))
		for j, alias := range entry.Aliases {
			quoted[j] = regexp.QuoteMeta(alias)
		}
		regexps[i] = regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	}
	return regexps
}

// SkillOntology 返回静态技能目录（声明顺序）
func SkillOntology() []SkillEntry {
	return skillOntology
}
