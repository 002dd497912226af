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

package silverdiamond

import "context"

// Objects lists the objects recognized in the image at imageURL.
func (c *Client) Objects(ctx context.Context, imageURL string) ([]string, error) {
	imageURL, err := trimmedArg("image url", imageURL)
	if err != nil {
		return nil, err
	}
	env, err := c.call(ctx, "image-object-recognition", map[string]any{
		"image_url": imageURL,
	}, "objects")
	if err != nil {
		return nil, err
	}
	objects, ok := env.Strings("objects")
	if !ok {
		return nil, badField("image-object-recognition", "objects", "a list of strings")
	}
	return objects, nil
}
