package logic

var NewFeatureNoticesWithCatalog = newFeatureNotices
