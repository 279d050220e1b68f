package constants

// Redis Key 前缀和格式常量
// 使用统一的命名规范: app:{module}:{entity}:{unique_id}
const (
	// AppPrefix 是所有Redis Key的统一应用前缀
	AppPrefix = "app"

	// ProfileModulePrefix 画像模块
	ProfileModulePrefix = "profile"
	// FileModulePrefix 文件模块
	FileModulePrefix = "file"

	// EntityJSON 画像JSON实体
	EntityJSON = "json"
	// EntityDedupSet 去重集合实体
	EntityDedupSet = "dedup_set"
	// EntityMD5ToUUID MD5到UUID的映射实体
	EntityMD5ToUUID = "md5_to_uuid"

	// KeyProfileJSON 按解析文本MD5缓存的画像JSON (STRING)
	// 格式: app:profile:json:{text_md5}
	KeyProfileJSON = AppPrefix + ":" + ProfileModulePrefix + ":" + EntityJSON + ":%s"

	// KeyTextMD5Set 已处理解析文本MD5集合，用于快速去重 (SET)
	// 格式: app:file:dedup_set
	KeyTextMD5Set = AppPrefix + ":" + FileModulePrefix + ":" + EntityDedupSet

	// KeyTextMD5ToProfileUUID MD5到画像UUID的映射 (STRING)
	// 格式: app:file:md5_to_uuid:{md5}
	KeyTextMD5ToProfileUUID = AppPrefix + ":" + FileModulePrefix + ":" + EntityMD5ToUUID + ":%s"
)
