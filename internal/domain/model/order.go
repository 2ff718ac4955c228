package model

import "time"

// 確定済み注文。カート1行につき1レコード作られる。
// TotalAmount は確定時点の price × quantity で固定し、
// 以後商品価格が変わっても再計算しない。
type Order struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64 `gorm:"not null;index" json:"user_id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`
	Quantity  int64 `gorm:"not null" json:"quantity"`

	//確定時点の合計金額（凍結）
	TotalAmount float64 `gorm:"not null" json:"total_amount"`

	//UTCで保存し、表示時にタイムゾーン変換する
	OrderDate time.Time `gorm:"not null;index" json:"order_date"`
}
