package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mroshb/quizmaster_bot/pkg/errors"
)

// SheetClient fetches quiz sheets published as JSON arrays of question
// records.
type SheetClient struct {
	client *http.Client
}

func NewSheetClient(timeout time.Duration) *SheetClient {
	return &SheetClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the sheet at url and builds a QuestionSet from it. A
// malformed record aborts the whole load; no partial set is returned.
func (c *SheetClient) Fetch(ctx context.Context, url string) (*QuestionSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "invalid sheet URL")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to fetch quiz sheet")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeInternalError,
			fmt.Sprintf("sheet fetch returned HTTP %d", resp.StatusCode))
	}

	var records []QuestionRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeMalformedQuestion, "failed to decode quiz sheet")
	}

	return NewQuestionSet(records)
}
