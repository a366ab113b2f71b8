package icon

import (
	"fmt"
	"testing"

	"github.com/anisan-cli/seekbar/asset"
	"github.com/anisan-cli/seekbar/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for i := range icons {
			target := i

			Convey(fmt.Sprintf("Icon %d renders for each variant", target), func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				}
			})

			Convey(fmt.Sprintf("Icon %d is empty for an unknown variant", target), func() {
				viper.Set(key.IconsVariant, "")
				So(Get(target), ShouldBeEmpty)
			})
		}
	})
}

func TestForAsset(t *testing.T) {
	Convey("Every transport image has a terminal symbol", t, func() {
		for _, name := range asset.Names() {
			_, ok := ForAsset(name)
			So(ok, ShouldBeTrue)
		}

		_, ok := ForAsset("rewind")
		So(ok, ShouldBeFalse)
	})
}
