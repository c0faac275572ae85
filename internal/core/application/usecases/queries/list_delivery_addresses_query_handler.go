package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveryAddressesQueryHandler reads the address book with plain SQL,
// bypassing the aggregate.
type ListDeliveryAddressesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveryAddressesQueryHandler(db *gorm.DB) ListDeliveryAddressesQueryHandler {
	return ListDeliveryAddressesQueryHandler{db: db}
}

func (h ListDeliveryAddressesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveryAddressesQuery,
) ([]ListDeliveryAddressesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	addresses := make([]ListDeliveryAddressesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			receiver,
			phone_number,
			province,
			district,
			ward,
			address,
			notice,
			created_at
		FROM delivery_addresses
		ORDER BY created_at DESC, id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListDeliveryAddressesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Info.Receiver,
			&item.Info.PhoneNumber,
			&item.Info.Province,
			&item.Info.District,
			&item.Info.Ward,
			&item.Info.Address,
			&item.Info.Notice,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		addressID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = addressID
		item.CreatedAt = item.CreatedAt.UTC()
		addresses = append(addresses, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
