package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gitlab.com/nunet/opencompute-monitor/models"
)

var (
	errNotAnObject   = errors.New("config is not a JSON object")
	errMissingHotkey = errors.New("miner record has no hotkey")
)

// RecordSource lists the raw records of one project namespace.
type RecordSource interface {
	ListRecords(ctx context.Context) ([]models.RawRecord, error)
}

// Fetcher extracts miner specs and allocations from a RecordSource.
type Fetcher struct {
	source RecordSource
}

func NewFetcher(source RecordSource) *Fetcher {
	return &Fetcher{source: source}
}

func (f *Fetcher) list(ctx context.Context) ([]models.RawRecord, error) {
	records, err := f.source.ListRecords(ctx)
	if err != nil {
		return nil, &ServiceUnavailableError{Err: err}
	}
	return records, nil
}

// FetchMinerSpecs maps each miner's hotkey to the specs it reported. Miners
// without specs map to nil unless another run of theirs reported some. Unreadable records are logged and skipped.
func (f *Fetcher) FetchMinerSpecs(ctx context.Context) (*models.MinerSpecs, error) {
	records, err := f.list(ctx)
	if err != nil {
		return nil, err
	}

	specs := &models.MinerSpecs{}
	var skipped error
	for _, record := range records {
		if err := readMiner(record, specs); err != nil {
			skipped = multierr.Append(skipped, &TransientRecordError{
				RecordID:   record.ID,
				RecordName: record.Name,
				Err:        err,
			})
		}
	}

	logSkipped(ctx, "an error occurred while getting specs", skipped)
	return specs, nil
}

func readMiner(record models.RawRecord, specs *models.MinerSpecs) error {
	if err := checkObject(record.Config); err != nil {
		return err
	}

	if role, _ := jsonparser.GetString(record.Config, "role"); role != models.RoleMiner {
		return nil
	}

	hotkey, err := jsonparser.GetString(record.Config, "hotkey")
	if err != nil || hotkey == "" {
		return errMissingHotkey
	}

	value, dataType, _, err := jsonparser.Get(record.Config, "specs")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError), dataType == jsonparser.Null:
		// a run without specs never hides specs another run reported
		specs.SetIfAbsent(hotkey, nil)
	case err != nil:
		return fmt.Errorf("unable to read specs: %w", err)
	default:
		specs.Set(hotkey, rawValue(value, dataType))
	}
	return nil
}

// FetchAllocatedIDs concatenates the allocated_hotkeys reported by every
// validator. Duplicates are kept. A validator whose allocated_hotkeys is not
// an array counts as reporting no allocations.
func (f *Fetcher) FetchAllocatedIDs(ctx context.Context) ([]string, error) {
	records, err := f.list(ctx)
	if err != nil {
		return nil, err
	}

	allocated := []string{}
	if len(records) == 0 {
		zlog.Ctx(ctx).Info("no validator info found in the project")
		return allocated, nil
	}

	var skipped error
	for _, record := range records {
		ids, err := readValidator(record)
		if err != nil {
			skipped = multierr.Append(skipped, &TransientRecordError{
				RecordID:   record.ID,
				RecordName: record.Name,
				Err:        err,
			})
			continue
		}
		allocated = append(allocated, ids...)
	}

	logSkipped(ctx, "an error occurred while getting allocated hotkeys", skipped)
	return allocated, nil
}

func readValidator(record models.RawRecord) ([]string, error) {
	if err := checkObject(record.Config); err != nil {
		return nil, err
	}

	if role, _ := jsonparser.GetString(record.Config, "role"); role != models.RoleValidator {
		return nil, nil
	}

	value, dataType, _, err := jsonparser.Get(record.Config, "allocated_hotkeys")
	if err != nil || dataType == jsonparser.Null {
		return nil, nil
	}
	if dataType != jsonparser.Array {
		return nil, fmt.Errorf("allocated_hotkeys is %s, not an array", dataType)
	}

	var ids []string
	_, err = jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, offset int, err error) {
		if itemType != jsonparser.String {
			return
		}
		if id, err := jsonparser.ParseString(item); err == nil && id != "" {
			ids = append(ids, id)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("cannot iterate over allocated_hotkeys: %w", err)
	}
	return ids, nil
}

func checkObject(config []byte) error {
	if len(config) == 0 {
		return errNotAnObject
	}
	_, dataType, _, err := jsonparser.Get(config)
	if err != nil || dataType != jsonparser.Object {
		return errNotAnObject
	}
	return nil
}

// rawValue restores the quotes jsonparser strips from string values.
func rawValue(value []byte, dataType jsonparser.ValueType) []byte {
	if dataType != jsonparser.String {
		return value
	}
	out := make([]byte, 0, len(value)+2)
	out = append(out, '"')
	out = append(out, value...)
	return append(out, '"')
}

func logSkipped(ctx context.Context, msg string, skipped error) {
	errs := multierr.Errors(skipped)
	if len(errs) == 0 {
		return
	}
	for _, err := range errs {
		var recErr *TransientRecordError
		if errors.As(err, &recErr) {
			zlog.Ctx(ctx).Warn(msg,
				zap.String("run_id", recErr.RecordID),
				zap.String("run_name", recErr.RecordName),
				zap.Error(recErr.Err))
		}
	}
	zlog.Ctx(ctx).Warn("skipped unreadable records", zap.Int("count", len(errs)))
}
