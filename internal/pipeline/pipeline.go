// Package pipeline drives the per-row submission workflow: resolve the
// resume file and vacancy, upload the file, create the applicant and
// attach it to the vacancy.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/hf-uploader/internal/huntflow"
	"github.com/spigell/hf-uploader/internal/logger"
	"github.com/spigell/hf-uploader/internal/roster"
	"github.com/spigell/hf-uploader/internal/utils"
)

const commentLogLimit = 80

type Deps struct {
	HF     *huntflow.Client
	Logger *zap.Logger
}

type Pipeline struct {
	hf     *huntflow.Client
	logger *zap.Logger

	// baseDir holds position-named subdirectories with resume files.
	baseDir string
	// delay is an optional pause between rows. Zero means no pause.
	delay time.Duration
}

func New(baseDir string, delay time.Duration, deps *Deps) *Pipeline {
	return &Pipeline{
		hf:      deps.HF,
		logger:  deps.Logger,
		baseDir: baseDir,
		delay:   delay,
	}
}

// Run processes roster rows in order against the prefetched vacancy
// catalog. The loop is fail-fast: the first row error stops the run, and
// remote resources created by earlier steps or rows stay in place.
func (p *Pipeline) Run(ctx context.Context, vacancies *huntflow.Vacancies, rows []roster.Row) error {
	for i, row := range rows {
		if i > 0 {
			if err := utils.WaitFor(ctx, p.delay); err != nil {
				return err
			}
		}

		if err := p.processRow(i+1, row, vacancies); err != nil {
			return fmt.Errorf("processing row %d: %w", i+1, err)
		}
	}

	return nil
}

func (p *Pipeline) processRow(num int, row roster.Row, vacancies *huntflow.Vacancies) error {
	body, err := huntflow.PrepareApplicantBody(row.FullName, row.Salary)
	if err != nil {
		return err
	}

	file, err := roster.ResolveFile(filepath.Join(p.baseDir, row.Position), row.FullName)
	if err != nil {
		return err
	}

	vacancyID := vacancies.FindIDByPosition(row.Position)

	uploadedFileID, err := p.hf.UploadFile(file)
	if err != nil {
		return err
	}

	applicantID, err := p.hf.CreateApplicant(body)
	if err != nil {
		return err
	}

	// Statuses are fetched fresh for every row, not cached across rows.
	statuses, err := p.hf.GetStatuses()
	if err != nil {
		return err
	}
	statusID := statuses.FindIDByName(row.Status)

	p.logger.Info("processing candidate",
		zap.Int("row", num),
		zap.String("candidate", strings.TrimSpace(row.FullName)),
		zap.String("file", file),
		zap.Any("vacancy_id", vacancyID),
	)

	echoed, err := p.hf.AttachVacancy(applicantID, &huntflow.Application{
		Vacancy: vacancyID,
		Status:  statusID,
		Comment: row.Comment,
		Files:   []int{uploadedFileID},
	})
	if err != nil {
		return err
	}

	// do not bother error since the response was already parsed from JSON
	pretty, _ := json.MarshalIndent(echoed, "", "  ")
	p.logger.Info(fmt.Sprintf("application created: \n%s", pretty))

	p.logger.Info("candidate processed",
		zap.Int("row", num),
		zap.String("comment", logger.TruncateForLog(row.Comment, commentLogLimit)),
	)

	return nil
}
