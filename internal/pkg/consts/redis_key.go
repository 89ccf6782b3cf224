package consts

const (
	// HashtagCacheKey prefixes cached hashtag analysis results.
	HashtagCacheKey = "goviral:hashtag:"
	// DailyUpdateLock guards the follower-update batch against overlap.
	DailyUpdateLock = "goviral:lock:daily_update"
	// ArticleBatchLock guards the article generation batch.
	ArticleBatchLock = "goviral:lock:article_batch"
)
