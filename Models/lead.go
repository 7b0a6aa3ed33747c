package Models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Lead struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	TestName  string    `json:"test_name"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (Lead) TableName() string {
	return "website_leads"
}

type Appointment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	TestName  string    `json:"test_name"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func CreateLead(lead *Lead) error {
	if lead.Status == "" {
		lead.Status = "pending"
	}
	return DB.Create(lead).Error
}

func CreateAppointment(appointment *Appointment) error {
	if appointment.Status == "" {
		appointment.Status = "pending"
	}
	return DB.Create(appointment).Error
}

func UpdateLeadStatus(id uint, status string) error {
	result := DB.Model(&Lead{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func UpdateAppointmentStatus(id uint, status string) error {
	result := DB.Model(&Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func CountRows(table string) (int64, error) {
	var count int64
	err := DB.Table(table).Count(&count).Error
	return count, err
}

// FetchRows reads every row of a managed table as field->value maps, with
// the column order discovered from the live schema so columns added by a
// later migration show up without a code change.
func FetchRows(table string) ([]string, []map[string]interface{}, error) {
	columns, err := ColumnOrder(table)
	if err != nil {
		return nil, nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)
	rows, err := DB.Raw(query).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var data []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		data = append(data, row)
	}

	return columns, data, rows.Err()
}
