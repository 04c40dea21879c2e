// Package embedded 为程序提供读取编译进二进制的配置文件的统一入口。
//
// //go:embed 指令只能嵌入所在包目录下的文件，
// 因此数据 FS 在根包(embed.go)中声明，通过 Init 传入。
// "data/" 以外的路径从磁盘读取，
// -config 覆盖和测试都通过这种方式提供自己的文件。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DataPrefix 从嵌入 FS 读取的路径前缀
const DataPrefix = "data/"

// ErrNotInitialized 在 Init 之前请求嵌入路径时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init 设置嵌入的数据 FS，必须在加载任何配置之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 是否已用可用的 FS 调用过 Init
func IsInitialized() bool {
	return initialized
}

// normalize 将系统分隔符转换为正斜杠并去掉 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// ReadFile 从嵌入 FS 读取 "data/..." 路径，
// 其他路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)
	if !strings.HasPrefix(path, DataPrefix) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s from disk: %w", path, err)
		}
		return data, nil
	}

	if !initialized {
		return nil, ErrNotInitialized
	}
	data, err := fs.ReadFile(dataFS, path)
	if err != nil {
		return nil, fmt.Errorf("read %s from embedded data: %w", path, err)
	}
	return data, nil
}

// Exists ReadFile 能否找到该路径
func Exists(path string) bool {
	path = normalize(path)
	if !strings.HasPrefix(path, DataPrefix) {
		_, err := os.Stat(path)
		return err == nil
	}
	if !initialized {
		return false
	}
	_, err := fs.Stat(dataFS, path)
	return err == nil
}
