package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the resolv space holding button hit regions and the pointer
var Space = donburi.NewComponentType[resolv.Space]()
