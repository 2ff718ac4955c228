package model

type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`

	//アップロード画像の相対パス（/static配下）
	ImagePath string `gorm:"type:varchar(512)" json:"image_path"`

	//所有する出品者
	AdminID int64 `gorm:"not null;index" json:"admin_id"`
}
