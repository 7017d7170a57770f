package app

import (
	"github.com/specialistvlad/pwchain/internal/registry"
	"github.com/specialistvlad/pwchain/modules/characters"
	"github.com/specialistvlad/pwchain/modules/separator"
	"github.com/specialistvlad/pwchain/modules/shuffle"
	"github.com/specialistvlad/pwchain/modules/words"
)

// coreModules is the definitive list of all strategies that are compiled
// into the pwchain binary.
var coreModules = []registry.Module{
	&words.Module{},
	&characters.Module{},
	&separator.Module{},
	&shuffle.Module{},
}
