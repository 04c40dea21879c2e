package config

// 加载场景布局和时间

const (
	// LoadingBarWidth 进度条宽度(像素)
	LoadingBarWidth float64 = 480

	// LoadingBarHeight 进度条高度(像素)
	LoadingBarHeight float64 = 18

	// LoadingBarY 进度条上边缘
	LoadingBarY float64 = 420

	// LoadingTitleY 标题文字位置
	LoadingTitleY float64 = 250

	// LoadingTitleFontSize 标题文字大小
	LoadingTitleFontSize float64 = 40

	// LoadingTextFontSize 进度和提示文字大小
	LoadingTextFontSize float64 = 20

	// StartButtonWidth 和 StartButtonHeight 加载完成后
	// 替换进度条的开始按钮尺寸
	StartButtonWidth  float64 = 180
	StartButtonHeight float64 = 56

	// LoadingFadeDuration 开始按钮淡入时长
	LoadingFadeDuration float64 = 0.4
)
