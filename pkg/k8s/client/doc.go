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

// Package client provides a shared Kubernetes client for reading NestLang
// documents from ConfigMaps and writing validation results back to them.
//
// The client is initialized once on first use and cached:
//
//	clientset, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	cm, err := clientset.CoreV1().ConfigMaps("default").Get(ctx, "schemas", metav1.GetOptions{})
//
// A custom kubeconfig bypasses the cache:
//
//	clientset, _, err := client.ForKubeconfig("/path/to/kubeconfig")
//
// # Authentication Modes
//
// Out-of-cluster the client reads KUBECONFIG, then ~/.kube/config. When
// neither exists it falls back to the in-cluster service account.
package client
