package repository

import (
	"provider-directory/internal/domain/entity"
	domainRepo "provider-directory/internal/domain/repository"

	"gorm.io/gorm"
)

// rosterQuery produces one flattened row per doctor that currently has at
// least one practice affiliation.
//
// The affiliation lateral keeps rows that are open-ended or end on or after
// today; the license lateral attaches one of the doctor's licenses. Neither
// lateral orders its candidates, so when several rows qualify the engine may
// return any of them. The trailing practice_id filter discards doctors with
// no current affiliation, which turns the left lateral join into an
// effective inner join.
const rosterQuery = `
SELECT
    d.doctor_id,
    d.first_name,
    d.last_name,
    d.specialty,
    d.email,
    d.phone,
    p.practice_id,
    p.practice_name,
    p.address_line1,
    p.address_line2,
    p.city,
    p.state,
    p.zip_code,
    p.phone AS practice_phone,
    p.email AS practice_email,
    dp.role,
    dp.start_date,
    dp.end_date,
    dp.is_primary,
    l.license_number,
    l.license_type,
    l.state AS license_state,
    l.issue_date,
    l.expiry_date,
    l.status AS license_status
FROM doctors d
LEFT JOIN LATERAL (
    SELECT *
    FROM doctor_practices dp
    WHERE dp.doctor_id = d.doctor_id
      AND (dp.end_date IS NULL OR dp.end_date >= CURRENT_DATE)
    LIMIT 1
) dp ON TRUE
LEFT JOIN practices p ON p.practice_id = dp.practice_id
LEFT JOIN LATERAL (
    SELECT *
    FROM licenses l
    WHERE l.doctor_id = d.doctor_id
    LIMIT 1
) l ON TRUE
WHERE p.practice_id IS NOT NULL
ORDER BY p.practice_name ASC, d.last_name ASC, d.first_name ASC`

type rosterRepository struct{}

func NewRosterRepository() domainRepo.RosterRepository {
	return &rosterRepository{}
}

func (r *rosterRepository) List(db *gorm.DB) ([]entity.RosterEntry, error) {
	var entries []entity.RosterEntry
	err := db.Raw(rosterQuery).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
