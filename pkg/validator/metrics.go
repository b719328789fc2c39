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

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsValidated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nestlang_documents_validated_total",
			Help: "Total number of NestLang documents validated",
		},
		[]string{"status"},
	)

	validationIssues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nestlang_validation_issues_total",
			Help: "Total number of NestLang validation issues by code",
		},
		[]string{"code"},
	)
)

func recordResult(res DocumentResult) {
	status := ValidationStatusPass
	if !res.Valid {
		status = ValidationStatusFail
	}
	documentsValidated.WithLabelValues(string(status)).Inc()
	for _, is := range res.Issues {
		validationIssues.WithLabelValues(string(is.Code)).Inc()
	}
}
