// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tasks

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/service-b/pkg/utils"
)

const processedSuffix = "_processed"

func fetchRecords() []string {
	return []string{"Data1", "Data2", "Data3"}
}

// BusinessResult reports what RunBusinessLogic produced.
type BusinessResult struct {
	Fetched   []string `json:"fetched" yaml:"fetched"`
	Processed []string `json:"processed" yaml:"processed"`
	Saved     int      `json:"saved" yaml:"saved"`
}

// RunBusinessLogic fetches the fixed records, processes each with a delay
// and logs them as saved. Interruption stops the run and is logged.
func (s *Simulator) RunBusinessLogic(ctx context.Context) BusinessResult {
	slog.Info("running core business logic")

	var res BusinessResult

	slog.Info("fetching records from data source")
	res.Fetched = s.fetch()
	if len(res.Fetched) == 0 {
		slog.Warn("no records found to process")
		return res
	}

	processed, err := s.processRecords(ctx, res.Fetched)
	if err != nil {
		slog.Error("error during business logic execution", "error", err)
		return res
	}
	res.Processed = processed

	saved, err := s.saveProcessedData(ctx, processed)
	res.Saved = saved
	if err != nil {
		slog.Error("error during business logic execution", "error", err)
		return res
	}

	slog.Info("business logic executed successfully")
	return res
}

func (s *Simulator) processRecords(ctx context.Context, records []string) ([]string, error) {
	slog.Info("processing records")

	out := make([]string, 0, len(records))
	for _, record := range records {
		slog.Info("processing record", "record", record)
		if err := sleep(ctx, s.RecordDuration); err != nil {
			return nil, err
		}
		out = append(out, record+processedSuffix)
	}

	slog.Info("records processed successfully")
	return out, nil
}

func (s *Simulator) saveProcessedData(ctx context.Context, records []string) (int, error) {
	slog.Info("saving processed records")

	saved := 0
	err := utils.BatchProcess(ctx, records, s.SaveBatchSize, func(_ context.Context, batch []string) error {
		for _, record := range batch {
			slog.Info("saved record", "record", record)
			saved++
		}
		return nil
	})
	if err != nil {
		return saved, err
	}

	slog.Info("all processed records saved successfully")
	return saved, nil
}

// SendNotification simulates delivering a notification and returns its
// generated identifier. The identifier is empty if delivery was interrupted.
func (s *Simulator) SendNotification(ctx context.Context, message string) string {
	id, err := utils.GenerateRandomID(utils.DefaultIDLength)
	if err != nil {
		slog.Error("error sending notification", "error", err)
		return ""
	}

	slog.Info("sending notification", "id", id, "message", message)
	if err := sleep(ctx, s.NotificationDuration); err != nil {
		slog.Error("error sending notification", "id", id, "error", err)
		return ""
	}

	slog.Info("notification sent successfully", "id", id)
	return id
}
