package linreg

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrEmptyDataset        = fmt.Errorf("%w: empty dataset", commerr.ErrInvalidArgument)
	ErrInvalidLearningRate = fmt.Errorf("%w: learning rate must be positive and finite", commerr.ErrInvalidArgument)
	ErrNonFinite           = fmt.Errorf("%w: non-finite value", commerr.ErrInvalidArgument)
	ErrDegenerate          = fmt.Errorf("%w: x values have no variance", commerr.ErrInvalidArgument)
)
