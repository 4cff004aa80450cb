package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	buildversion "github.com/stealthycommerce/stealthy/internal/shared/version"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stealthy %s (%s, %s/%s)\n",
				buildversion.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
