package repository

import (
	"strings"

	"vidtube/internal/model"

	"gorm.io/gorm"
)

// publicUserColumns 对外暴露的用户字段，永远不包含密码和刷新令牌
var publicUserColumns = []string{"id", "user_name", "email", "full_name", "avatar_url", "cover_image_url", "created_at", "updated_at"}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据 ID 查询用户（含敏感字段，仅供内部校验）
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetPublicByID 根据 ID 查询用户，排除密码与刷新令牌
func (r *UserRepository) GetPublicByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Select(publicUserColumns).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名查询用户（用户名统一小写存储）
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_name = ?", strings.ToLower(username)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIdentifier 根据用户名或邮箱查询用户（登录用）
func (r *UserRepository) GetByIdentifier(identifier string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_name = ? OR email = ?", strings.ToLower(identifier), identifier).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsernameOrEmail 检查用户名或邮箱是否已被占用
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("user_name = ? OR email = ?", strings.ToLower(username), email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建用户
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户字段，返回更新后的公开视图
func (r *UserRepository) Update(id int64, updates map[string]interface{}) (*model.User, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetPublicByID(id)
}

// UpdatePassword 更新密码哈希
func (r *UserRepository) UpdatePassword(id int64, hash string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("password", hash).Error
}

// SaveRefreshToken 持久化刷新令牌，同一用户只保留最新一个
func (r *UserRepository) SaveRefreshToken(id int64, token string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("refresh_token", token).Error
}

// ClearRefreshToken 清除刷新令牌（登出 / 会话失效）
func (r *UserRepository) ClearRefreshToken(id int64) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("refresh_token", nil).Error
}
