// SPDX-License-Identifier: MIT

package immap

import "fmt"

// NotFoundError is returned by (*Map[K, V]).At when Key is not bound in
// the map.
type NotFoundError[K any] struct {
	Key K
}

func (e *NotFoundError[K]) Error() string {
	return fmt.Sprintf("immap: key not found: %v", e.Key)
}
