// Copyright 2026 Silver Diamond
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

// Package silverdiamond is the official Go client for the Silver
// Diamond text and image analysis API.
//
// A Client is built from an API key and talks to the production
// service by default:
//
//	client, err := silverdiamond.New(os.Getenv("SILVERDIAMOND_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	lang, err := client.Language(ctx, "No hablo inglés")
//	// lang == silverdiamond.LanguageSpanish
//
// Every operation is a single HTTP request with no retries and no
// built-in timeout; bound calls with a context deadline or the
// WithHTTPTimeout option. The Client keeps no per-call state and is
// safe for concurrent use.
//
// The service reports failures in the response body rather than via
// HTTP status codes. Those surface as *RemoteError. Failures to reach
// the service at all surface as *TransportError, and responses the
// client cannot interpret as ErrUnexpectedResponse. Arguments are
// trimmed of surrounding whitespace before anything else; calls with
// blank required arguments fail with ErrInvalidArgument without
// touching the network.
package silverdiamond
