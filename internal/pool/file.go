package pool

import (
	"encoding/json"
	"fmt"
	"os"
)

// File is the on-disk form of a generated pool, written by the
// generate command and read back by preview and the TUI.
type File struct {
	Document  string     `json:"document,omitempty"`
	Questions []Question `json:"questions"`
}

// fileQuestion keeps the wire names stable independent of the Question
// field names.
type fileQuestion struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Topic            string   `json:"topic"`
	Tier             int      `json:"tier"`
	PredictedCorrect int      `json:"predicted_correct"`
	Options          []string `json:"options"`
	CorrectIndex     int      `json:"correct_index"`
	Explanation      string   `json:"explanation"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	return json.Marshal(fileQuestion{
		ID:               q.ID,
		Text:             q.Text,
		Topic:            q.Topic,
		Tier:             int(q.Tier),
		PredictedCorrect: q.PredictedCorrect,
		Options:          q.Options,
		CorrectIndex:     q.CorrectIndex,
		Explanation:      q.Explanation,
	})
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var fq fileQuestion
	if err := json.Unmarshal(data, &fq); err != nil {
		return err
	}
	*q = Question{
		ID:               fq.ID,
		Text:             fq.Text,
		Topic:            fq.Topic,
		Tier:             Tier(fq.Tier),
		PredictedCorrect: fq.PredictedCorrect,
		Options:          fq.Options,
		CorrectIndex:     fq.CorrectIndex,
		Explanation:      fq.Explanation,
	}
	return nil
}

// WriteFile saves a pool file as indented JSON.
func WriteFile(path string, f File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pool file: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write pool file: %w", err)
	}
	return nil
}

// ReadFile loads a pool file and validates its questions.
func ReadFile(path string) (File, *Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, nil, fmt.Errorf("read pool file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, nil, fmt.Errorf("parse pool file: %w", err)
	}

	p, err := New(f.Questions)
	if err != nil {
		return File{}, nil, fmt.Errorf("invalid pool in %s: %w", path, err)
	}
	return f, p, nil
}
