// Package jsonfile persists the survey response collection as a single
// JSON-encoded array on disk.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/mdpdash/core"
	"github.com/trezcool/mdpdash/core/survey"
)

type responseRepository struct {
	path   string
	logger core.Logger

	// guards the read-modify-write append cycle within this process;
	// cross-process writers are not expected (single-tenant internal tool).
	mu sync.Mutex
}

var _ survey.Repository = (*responseRepository)(nil)

func NewResponseRepository(conf *core.Config, logger core.Logger) *responseRepository {
	return &responseRepository{path: conf.DataFile, logger: logger}
}

// QueryAllResponses returns all stored responses in insertion order. A missing,
// unreadable or corrupt file degrades to an empty slice so the dashboard stays
// usable; the condition is logged.
func (repo *responseRepository) QueryAllResponses() ([]survey.SurveyResponse, error) {
	data, err := ioutil.ReadFile(repo.path)
	if err != nil {
		if !os.IsNotExist(err) {
			repo.logger.Error(fmt.Sprintf("reading %s: %v", repo.path, err), err)
		}
		return []survey.SurveyResponse{}, nil
	}

	var resps []survey.SurveyResponse
	if err := json.Unmarshal(data, &resps); err != nil {
		repo.logger.Error(fmt.Sprintf("corrupt response store %s: %v", repo.path, err), err)
		return []survey.SurveyResponse{}, nil
	}
	if resps == nil {
		resps = []survey.SurveyResponse{}
	}
	return resps, nil
}

// AppendResponse appends a record to the collection. The full array is
// rewritten to a temp file and renamed into place so a failed write never
// truncates the existing data.
func (repo *responseRepository) AppendResponse(resp survey.SurveyResponse) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	resps, err := repo.QueryAllResponses()
	if err != nil {
		return err
	}
	resps = append(resps, resp)

	data, err := json.MarshalIndent(resps, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding responses")
	}

	tmp, err := ioutil.TempFile(filepath.Dir(repo.path), filepath.Base(repo.path)+".*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "writing responses")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err = os.Rename(tmp.Name(), repo.path); err != nil {
		return errors.Wrap(err, "replacing response store")
	}
	return nil
}
