package repository

import (
	"context"
	"errors"

	"github.com/Behyna/sms-services/smsbroadcast/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

var ErrDeliveryDuplicate = errors.New("DELIVERY_DUPLICATE")

type DeliveryRepository interface {
	CreateBatch(ctx context.Context, deliveries []model.Delivery) error
	GetByPrivateReference(ctx context.Context, privateReference string) ([]model.Delivery, error)
	GetByReference(ctx context.Context, reference string) ([]model.Delivery, error)
}

type Delivery struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &Delivery{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Delivery{})
}

func (d *Delivery) CreateBatch(ctx context.Context, deliveries []model.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	err := GetTx(ctx, d.db).Create(&deliveries).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrDeliveryDuplicate
	}

	return err
}

func (d *Delivery) GetByPrivateReference(ctx context.Context, privateReference string) ([]model.Delivery, error) {
	return d.find(ctx, "private_reference = ?", privateReference)
}

func (d *Delivery) GetByReference(ctx context.Context, reference string) ([]model.Delivery, error) {
	return d.find(ctx, "reference = ?", reference)
}

func (d *Delivery) find(ctx context.Context, query string, arg string) ([]model.Delivery, error) {
	var deliveries []model.Delivery

	err := GetTx(ctx, d.db).Where(query, arg).Order("id ASC").Find(&deliveries).Error
	if err != nil {
		return nil, err
	}

	return deliveries, nil
}
