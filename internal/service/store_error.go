package service

import (
	"github.com/pkg/errors"
)

// transient 将底层存储失败包装为 ErrStoreUnavailable，错误种类原样向上传递，不在本层重试
func transient(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(ErrStoreUnavailable, op+": "+err.Error())
}
