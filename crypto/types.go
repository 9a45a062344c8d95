// SPDX-License-Identifier: GPL-3.0-only

package crypto

type Crypto struct {
	BcryptCost int
}
