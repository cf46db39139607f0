package family

import (
	"context"
	"fmt"
	"time"

	"pseudo-manager/feature/family/models"
)

// VerifyFamily reconciles a family's node rows against object storage.
//
// Every record must have readable content whose MD5 matches the checksum
// recorded at store time. Missing blobs and checksum mismatches are
// collected into the report rather than aborting, so one broken record does
// not hide the rest.
func VerifyFamily(ctx context.Context, repo *Repository, label string) (*models.VerifyReport, error) {
	start := time.Now()

	f, err := Load(ctx, repo, label)
	if err != nil {
		return nil, err
	}

	records, err := repo.ListRecords(ctx, f.GroupID())
	if err != nil {
		return nil, err
	}

	report := &models.VerifyReport{
		Label:        label,
		TotalRecords: len(records),
	}

	for _, record := range records {
		content, err := repo.FetchContent(ctx, record)
		if err != nil {
			report.MissingContent = append(report.MissingContent, describeRecord(record))
			continue
		}
		check := models.PseudoRecord{Content: content}
		if check.Checksum() != record.MD5 {
			report.ChecksumErrors = append(report.ChecksumErrors, describeRecord(record))
			continue
		}
		report.VerifiedRecords++
	}

	report.GeneratedAt = start.UTC().Format(time.RFC3339)
	report.ExecutionTime = time.Since(start).String()
	return report, nil
}

func describeRecord(record *models.PseudoRecord) string {
	return fmt.Sprintf("%s (%s, node %s)", record.Element, record.Filename, record.NodeID)
}
